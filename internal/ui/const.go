package ui

type sessionKey string

var (
	sessionKeyFlash    sessionKey = "flash"
	sessionKeyReturnTo sessionKey = "return_to"
)
