package app

// Status is the raw value returned by ShellExecute. Values above 32 mean the
// target was dispatched; anything else is an error code.
type Status uintptr

// Error codes ShellExecute documents. Several SE_ERR_* values alias the
// ERROR_* codes (SE_ERR_FNF == 2, SE_ERR_PNF == 3).
const (
	StatusOutOfResources  Status = 0
	StatusFileNotFound    Status = 2  // ERROR_FILE_NOT_FOUND
	StatusPathNotFound    Status = 3  // ERROR_PATH_NOT_FOUND
	StatusAccessDenied    Status = 5  // SE_ERR_ACCESSDENIED
	StatusOutOfMemory     Status = 8  // SE_ERR_OOM
	StatusBadFormat       Status = 11 // ERROR_BAD_FORMAT
	StatusShare           Status = 26 // SE_ERR_SHARE
	StatusAssocIncomplete Status = 27 // SE_ERR_ASSOCINCOMPLETE
	StatusDDETimeout      Status = 28 // SE_ERR_DDETIMEOUT
	StatusDDEFail         Status = 29 // SE_ERR_DDEFAIL
	StatusDDEBusy         Status = 30 // SE_ERR_DDEBUSY
	StatusNoAssoc         Status = 31 // SE_ERR_NOASSOC
	StatusDLLNotFound     Status = 32 // SE_ERR_DLLNOTFOUND

	// StatusDispatched is the smallest success value. Adapters that have no
	// native status report it after a successful start.
	StatusDispatched Status = 33
)

// OK reports whether the status signals a successful dispatch.
func (s Status) OK() bool {
	return s > 32
}

// Message returns the human-readable reason for a failure status, or an
// empty string when the status is a success.
func (s Status) Message() string {
	if s.OK() {
		return ""
	}
	switch s {
	case StatusOutOfResources:
		return "the operating system is out of memory or resources"
	case StatusFileNotFound:
		return "the specified file was not found"
	case StatusPathNotFound:
		return "the specified path was not found"
	case StatusAccessDenied:
		return "the operating system denied access to the specified file"
	case StatusOutOfMemory:
		return "there was not enough memory to complete the operation"
	case StatusBadFormat:
		return "the .exe file is invalid (non-Win32 .exe or error in .exe image)"
	case StatusShare:
		return "a sharing violation occurred"
	case StatusAssocIncomplete:
		return "the file name association is incomplete or invalid"
	case StatusDDETimeout:
		return "the DDE transaction could not be completed because the request timed out"
	case StatusDDEFail:
		return "the DDE transaction failed"
	case StatusDDEBusy:
		return "the DDE transaction could not be completed because other DDE transactions were being processed"
	case StatusNoAssoc:
		return "there is no application associated with the given file name extension"
	case StatusDLLNotFound:
		return "the specified DLL was not found"
	default:
		return "unknown error"
	}
}

// Name returns the Win32 constant for a known failure status. Status 0 has
// no constant of its own.
func (s Status) Name() string {
	switch s {
	case StatusFileNotFound:
		return "ERROR_FILE_NOT_FOUND"
	case StatusPathNotFound:
		return "ERROR_PATH_NOT_FOUND"
	case StatusAccessDenied:
		return "SE_ERR_ACCESSDENIED"
	case StatusOutOfMemory:
		return "SE_ERR_OOM"
	case StatusBadFormat:
		return "ERROR_BAD_FORMAT"
	case StatusShare:
		return "SE_ERR_SHARE"
	case StatusAssocIncomplete:
		return "SE_ERR_ASSOCINCOMPLETE"
	case StatusDDETimeout:
		return "SE_ERR_DDETIMEOUT"
	case StatusDDEFail:
		return "SE_ERR_DDEFAIL"
	case StatusDDEBusy:
		return "SE_ERR_DDEBUSY"
	case StatusNoAssoc:
		return "SE_ERR_NOASSOC"
	case StatusDLLNotFound:
		return "SE_ERR_DLLNOTFOUND"
	default:
		return ""
	}
}
