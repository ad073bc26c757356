package rotolog

const (
	emptyString    = ""
	scopeSeparator = "/"
	lineSeparator  = "\n"

	// defaultBufferSize is the async queue capacity used when the
	// configuration leaves BufferSize at zero.
	defaultBufferSize = 1024

	// unboundedBackups stands in for "no retention limit": slots are
	// shifted but never deleted while the retained count is unset.
	unboundedBackups = 1 << 30

	logFileMode = 0o644
)

const (
	errMsgConfigInvalid = "log configuration is invalid"
	errMsgNotConfigured = "rotolog: Config requested before any configuration was installed"
)
