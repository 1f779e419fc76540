package elefren

const (
	libraryName    = "elefren-go"
	libraryVersion = "0.1.0"
)

// defaultUserAgent identifies the library and, where available, the host OS,
// e.g. "elefren-go/0.1.0 linux/6.1.0".
func defaultUserAgent() string {
	agent := libraryName + "/" + libraryVersion
	if osID := goOSIdentifier(); osID != "" {
		agent += " " + osID
	}
	return agent
}
