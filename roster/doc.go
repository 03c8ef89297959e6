// Package roster loads name/number records from a delimited text file.
//
// The input format is deliberately naive: the first line is always
// treated as a header and skipped, and every following line is split on
// its first two commas into name, number, and additional info. There is
// no quoting support and no field trimming; lines with fewer than two
// commas simply yield empty trailing fields.
//
//	records, err := roster.Load("names.csv")
//
// # Input Encodings
//
// Files are decoded as UTF-8 by default, with a leading byte order mark
// stripped if present. Windows-1251 input is also supported:
//
//	records, err := roster.LoadWithEncoding("names.csv", roster.Windows1251)
package roster
