// Command lcodec is a thin CLI wrapper around the binarycodec facade: encode a JSON
// ledger object to canonical hex, decode hex back to JSON, or produce the
// signing/multisigning/claim data blobs an external signer would consume. It performs
// no signing itself — key material and signature generation are out of scope.
package main

func main() {
	initLogging()
	Execute()
}
