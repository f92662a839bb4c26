package reader

// DefaultMaxBlankRun is the number of consecutive blank rows after which an
// unsized sheet is considered finished.
const DefaultMaxBlankRun = 100

// Options configures reading behavior.
type Options struct {
	// MaxBlankRun stops scanning an unsized sheet after this many consecutive
	// blank rows. Zero means DefaultMaxBlankRun; negative disables the limit.
	MaxBlankRun int
}

func (o Options) maxBlankRun() int {
	if o.MaxBlankRun == 0 {
		return DefaultMaxBlankRun
	}
	return o.MaxBlankRun
}
