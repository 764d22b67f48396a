package domain

// WatchedApp identifies one monitored application surface (domain entity).
// The zero value means "no app".
type WatchedApp struct {
	Pkg   string
	Label string
}

// None is the absent app value.
var None = WatchedApp{}

// Apps with a known short-form viewer, plus surfaces that keep a session
// view alive without being short-form themselves.
var (
	YouTube   = WatchedApp{Pkg: "com.google.android.youtube", Label: "YouTube"}
	Instagram = WatchedApp{Pkg: "com.instagram.android", Label: "Instagram"}
	TikTok    = WatchedApp{Pkg: "com.ss.android.ugc.trill", Label: "TikTok"}
	SystemUI  = WatchedApp{Pkg: "com.android.systemui", Label: "system"}
	Self      = WatchedApp{Pkg: "com.p4c.arguewithai", Label: "ArgueWithAi"}
)

// IsNone reports whether the value is the absent app.
func (a WatchedApp) IsNone() bool {
	return a == None
}
