package constants

// Various constants.
const (
	// NullString is the string representation of the JSON null value.
	NullString = "null"

	// SchemeFile et al are source identifier schemes.
	SchemeFile     = "file"
	SchemeHTTP     = "http"
	SchemeHTTPS    = "https"
	SchemeZK       = "zk"
	SchemeEtcd     = "etcd"
	SchemeEmbedded = "embedded"

	// PortZK et al are TCP port numbers, in decimal string form.
	PortZK   = "2181"
	PortEtcd = "2379"

	// FormatGo et al are the artifact formats produced by mimegen.
	FormatGo   = "go"
	FormatJSON = "json"

	// DataFileFormat is the format tag written into JSON data files.
	DataFileFormat = "mimetable/v1"

	// GeneratedHeader is the first line of every generated Go file.
	GeneratedHeader = "// Code generated by mimegen. DO NOT EDIT."
)
