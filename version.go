package xmlparser

// Version is the package version string, reported by the xmllint
// command and any other tool that wants to identify the library it was
// built against.
const Version = "1.0.0"
