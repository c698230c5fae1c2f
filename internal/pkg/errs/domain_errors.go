package errs

// Sentinels shared by the command and query sides.
var (
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrDomainValidation        = New("domain validation failed")
)
