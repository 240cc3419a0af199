// Package token provides low-level scanning for JSON text: whitespace
// skipping, number and string recognition with UTF-16 escape decoding,
// printer-side quoting, and byte-offset position resolution.
package token
