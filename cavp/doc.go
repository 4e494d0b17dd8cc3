// Package cavp validates the digest engine against NIST CAVP test
// vectors. It parses the ShortMsg, LongMsg, and Monte response file
// formats (.rsp), runs the recorded vectors through the engine, and
// implements the SHA-256 Monte Carlo procedure: per checkpoint, 1000
// chained iterations where each message is the concatenation of the
// three most recent digest values.
//
// The package also reads the JSON corpus format produced by the
// reference vector generator.
package cavp
