package component

// Notice is a short HUD message shown until ExpiresAt (session seconds).
type Notice struct {
	Text      string
	ExpiresAt float64
}

var NoticeComponent = NewComponent[Notice]()
