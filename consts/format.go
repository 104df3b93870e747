package consts

// Report formats written by the command line tool
const (
	FormatText = "text"
	FormatHTML = "html"
)
