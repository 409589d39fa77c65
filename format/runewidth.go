package format

import (
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// StringWidth measures the rendered width of s in the given East-Asian-
// width-aware context, grapheme-segmenting first so combining marks don't
// inflate the count. A nil ctx defaults to uax11.LatinContext.
func StringWidth(s string, ctx *uax11.Context) int {
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, ctx)
}
