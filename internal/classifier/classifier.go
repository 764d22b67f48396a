// Package classifier decides whether a UI-tree snapshot shows a known
// short-form viewer. Matching is purely structural: node type plus resource
// id equality or suffix match, counted against a per-app threshold.
package classifier

import (
	"strings"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

// Fingerprint matches one node of a short-form viewer screen.
type Fingerprint struct {
	Type string
	ID   string
	// Suffix selects suffix matching on the resource id. YouTube prefixes
	// its reel ids with a build-dependent namespace, so only the tail is
	// stable.
	Suffix bool
}

func (f Fingerprint) matches(n *domain.Node) bool {
	if n.Type != f.Type || n.ID == "" {
		return false
	}
	if f.Suffix {
		return strings.HasSuffix(n.ID, f.ID)
	}
	return n.ID == f.ID
}

// screenPrint is the full fingerprint set for one app's short-form screen.
type screenPrint struct {
	marks     []Fingerprint
	threshold int
}

// Fingerprints per watched app. Adding an app is a data change.
var screens = map[domain.WatchedApp]screenPrint{
	domain.YouTube: {
		marks: []Fingerprint{
			{Type: "android.view.View", ID: "reel_progress_bar", Suffix: true},
			{Type: "android.widget.FrameLayout", ID: "reel_player_page_container", Suffix: true},
			{Type: "android.view.ViewGroup", ID: "reel_time_bar", Suffix: true},
		},
		threshold: 2,
	},
	domain.Instagram: {
		marks: []Fingerprint{
			{Type: "android.view.ViewGroup", ID: "com.instagram.android:id/clips_author_info_component"},
			{Type: "android.widget.Button", ID: "com.instagram.android:id/clips_author_username"},
			{Type: "android.view.ViewGroup", ID: "com.instagram.android:id/clips_caption_component"},
			{Type: "android.widget.ImageView", ID: "com.instagram.android:id/like_button"},
			{Type: "android.widget.ImageView", ID: "com.instagram.android:id/direct_share_button"},
			{Type: "android.widget.ImageView", ID: "com.instagram.android:id/clips_ufi_more_button_component"},
		},
		threshold: 5,
	},
	domain.TikTok: {
		marks: []Fingerprint{
			{Type: "android.widget.Button", ID: "com.ss.android.ugc.trill:id/ew0"},
			{Type: "android.widget.Button", ID: "com.ss.android.ugc.trill:id/dnl"},
			{Type: "android.widget.Button", ID: "com.ss.android.ugc.trill:id/ggg"},
		},
		threshold: 3,
	},
}

var byPkg = func() map[string]domain.WatchedApp {
	m := make(map[string]domain.WatchedApp, len(screens))
	for app := range screens {
		m[app.Pkg] = app
	}
	return m
}()

// Classify reports whether the snapshot owned by pkg shows that app's
// short-form screen. Unknown packages and nil snapshots classify false.
// Pure function, no side effects.
func Classify(pkg string, root *domain.Node) (domain.WatchedApp, bool) {
	app, ok := byPkg[pkg]
	if !ok || root == nil {
		return domain.None, false
	}
	if IsShortFormScreen(app, root) {
		return app, true
	}
	return domain.None, false
}

// IsShortFormScreen counts fingerprint hits over the whole tree and compares
// against the app's threshold. Trees are small, so the full walk is cheap.
func IsShortFormScreen(app domain.WatchedApp, root *domain.Node) bool {
	sp, ok := screens[app]
	if !ok || root == nil {
		return false
	}

	found := 0
	walk(root, func(n *domain.Node) {
		for _, f := range sp.marks {
			if f.matches(n) {
				found++
			}
		}
	})
	return found >= sp.threshold
}

// walk visits every node iteratively, depth first.
func walk(root *domain.Node, visit func(*domain.Node)) {
	stack := []*domain.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n)
		for _, c := range n.Children {
			if c != nil {
				stack = append(stack, c)
			}
		}
	}
}
