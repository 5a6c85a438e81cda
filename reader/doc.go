// Package reader provides decoded line access to recipe export files.
//
// Meal-Master and MasterCook were DOS and Windows programs, so their exports
// are rarely UTF-8. The reader decodes the legacy code page and splits the
// text into lines with terminators removed.
//
// # Opening Files
//
// Use [Open] to open a file for reading:
//
//	r, err := reader.Open("recipes.mmf", reader.CP437)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	for line := range r.Lines() {
//	    fmt.Println(line)
//	}
//	if err := r.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// Or use [NewReader] with any io.Reader, or [ReadLines] to read everything
// at once.
//
// # Encodings
//
//   - CP437 - the DOS code page used by Meal-Master
//   - Windows1252 - the Windows code page used by MasterCook
//   - Latin1 - ISO 8859-1
//   - UTF8 - UTF-8, with an optional byte order mark
//
// Use [EncodingFor] to pick the usual encoding of a format.
package reader
