package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

func node(typ, id string, children ...*domain.Node) *domain.Node {
	return &domain.Node{Type: typ, ID: id, Children: children}
}

func youtubeReelTree() *domain.Node {
	return node("android.widget.FrameLayout", "",
		node("android.widget.FrameLayout", "com.google.android.youtube:id/reel_player_page_container",
			node("android.view.View", "com.google.android.youtube:id/reel_progress_bar"),
			node("android.view.ViewGroup", "com.google.android.youtube:id/reel_time_bar"),
		),
	)
}

func instagramReelsTree() *domain.Node {
	return node("android.widget.FrameLayout", "",
		node("android.view.ViewGroup", "com.instagram.android:id/clips_author_info_component"),
		node("android.widget.Button", "com.instagram.android:id/clips_author_username"),
		node("android.view.ViewGroup", "com.instagram.android:id/clips_caption_component"),
		node("android.widget.ImageView", "com.instagram.android:id/like_button"),
		node("android.widget.ImageView", "com.instagram.android:id/direct_share_button"),
	)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		pkg      string
		root     *domain.Node
		wantApp  domain.WatchedApp
		detected bool
	}{
		{
			name:     "youtube reel screen",
			pkg:      domain.YouTube.Pkg,
			root:     youtubeReelTree(),
			wantApp:  domain.YouTube,
			detected: true,
		},
		{
			name:     "instagram reels screen at threshold",
			pkg:      domain.Instagram.Pkg,
			root:     instagramReelsTree(),
			wantApp:  domain.Instagram,
			detected: true,
		},
		{
			name: "tiktok feed screen",
			pkg:  domain.TikTok.Pkg,
			root: node("android.widget.FrameLayout", "",
				node("android.widget.Button", "com.ss.android.ugc.trill:id/ew0"),
				node("android.widget.Button", "com.ss.android.ugc.trill:id/dnl"),
				node("android.widget.Button", "com.ss.android.ugc.trill:id/ggg"),
			),
			wantApp:  domain.TikTok,
			detected: true,
		},
		{
			name: "youtube home feed below threshold",
			pkg:  domain.YouTube.Pkg,
			root: node("android.widget.FrameLayout", "",
				node("android.view.View", "com.google.android.youtube:id/reel_progress_bar"),
			),
			wantApp:  domain.None,
			detected: false,
		},
		{
			name: "tiktok profile below threshold",
			pkg:  domain.TikTok.Pkg,
			root: node("android.widget.FrameLayout", "",
				node("android.widget.Button", "com.ss.android.ugc.trill:id/ew0"),
				node("android.widget.Button", "com.ss.android.ugc.trill:id/dnl"),
			),
			wantApp:  domain.None,
			detected: false,
		},
		{
			name:     "unknown package",
			pkg:      "com.example.launcher",
			root:     youtubeReelTree(),
			wantApp:  domain.None,
			detected: false,
		},
		{
			name:     "nil snapshot",
			pkg:      domain.YouTube.Pkg,
			root:     nil,
			wantApp:  domain.None,
			detected: false,
		},
		{
			name: "exact ids do not suffix-match",
			pkg:  domain.Instagram.Pkg,
			root: node("android.widget.FrameLayout", "",
				node("android.view.ViewGroup", "prefix.com.instagram.android:id/clips_author_info_component"),
				node("android.widget.Button", "prefix.com.instagram.android:id/clips_author_username"),
				node("android.view.ViewGroup", "prefix.com.instagram.android:id/clips_caption_component"),
				node("android.widget.ImageView", "prefix.com.instagram.android:id/like_button"),
				node("android.widget.ImageView", "prefix.com.instagram.android:id/direct_share_button"),
			),
			wantApp:  domain.None,
			detected: false,
		},
		{
			name: "type must match alongside id",
			pkg:  domain.YouTube.Pkg,
			root: node("android.widget.FrameLayout", "",
				node("android.widget.TextView", "com.google.android.youtube:id/reel_progress_bar"),
				node("android.widget.TextView", "com.google.android.youtube:id/reel_time_bar"),
				node("android.widget.TextView", "com.google.android.youtube:id/reel_player_page_container"),
			),
			wantApp:  domain.None,
			detected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, detected := Classify(tt.pkg, tt.root)
			assert.Equal(t, tt.wantApp, app)
			assert.Equal(t, tt.detected, detected)
		})
	}
}

func TestIsShortFormScreenDeepNesting(t *testing.T) {
	// Fingerprints count regardless of depth
	deep := node("android.widget.FrameLayout", "",
		node("android.view.ViewGroup", "",
			node("android.view.ViewGroup", "",
				node("android.view.View", "com.google.android.youtube:id/reel_progress_bar"),
				node("android.view.ViewGroup", "",
					node("android.view.ViewGroup", "com.google.android.youtube:id/reel_time_bar"),
				),
			),
		),
	)
	assert.True(t, IsShortFormScreen(domain.YouTube, deep))
}
