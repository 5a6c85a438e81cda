// Package mxp parses recipes exported in the MasterCook plaintext format
// (MasterCook 1 through 4, .mxp).
//
// Each recipe starts with a framed header line and has a dashed footer
// separating the directions from the notes:
//
//	                     *  Exported from  MasterCook  *
//
//	                               Chili
//
//	Recipe By     : Jane Doe
//	Serving Size  : 6     Preparation Time :1:30
//	Categories    : Main Dish                       Beef
//
//	  Amount  Measure       Ingredient -- Preparation Method
//	--------  ------------  --------------------------------
//	   1 1/2  pounds        ground beef
//	       1  cup           onion -- chopped
//
//	Brown the beef.
//
//	                   - - - - - - - - - - - - - - - - - -
//
//	Freezes well.
//
// A recipe runs until the next header or the end of input.
package mxp
