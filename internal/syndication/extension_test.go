package syndication_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/raffaelramalhorosa/feedbridge/internal/syndication"
)

func nestedExtensions() ext.Extensions {
	return ext.Extensions{
		"media": {
			"group": {
				{
					Name: "group",
					Children: map[string][]ext.Extension{
						"content": {
							{Name: "content", Attrs: map[string]string{"url": "https://example.com/1.jpg", "medium": "image"}},
							{Name: "content", Attrs: map[string]string{"url": "https://example.com/2.jpg", "medium": "image"}},
							{
								Name:  "content",
								Attrs: map[string]string{"url": "https://example.com/3.mp4"},
								Children: map[string][]ext.Extension{
									"title": {{Name: "title", Value: "clip", Attrs: map[string]string{"type": "plain"}}},
								},
							},
						},
					},
				},
			},
		},
		"georss": {
			"point": {{Name: "point", Value: "45.256 -71.92"}},
		},
	}
}

func TestExtensionMapRoundTrip(t *testing.T) {
	native := nestedExtensions()

	unified := syndication.ExtensionMapFromNative(native)
	if diff := cmp.Diff(native, unified.ToNative()); diff != "" {
		t.Fatalf("extension tree mismatch (-want +got):\n%s", diff)
	}
}

func TestExtensionSiblingOrderPreserved(t *testing.T) {
	unified := syndication.ExtensionMapFromNative(nestedExtensions())

	contents := unified["media"]["group"][0].Children["content"]
	if len(contents) != 3 {
		t.Fatalf("expected 3 content siblings, got %d", len(contents))
	}
	want := []string{"https://example.com/1.jpg", "https://example.com/2.jpg", "https://example.com/3.mp4"}
	for i, c := range contents {
		if c.Attrs["url"] != want[i] {
			t.Errorf("sibling %d: expected %s, got %s", i, want[i], c.Attrs["url"])
		}
	}

	title := contents[2].Children["title"][0]
	if title.Value != "clip" || title.Attrs["type"] != "plain" {
		t.Fatalf("nested child lost: %+v", title)
	}
}

func TestExtensionConversionDoesNotAlias(t *testing.T) {
	native := nestedExtensions()
	unified := syndication.ExtensionMapFromNative(native)

	unified["georss"]["point"][0].Value = "changed"
	unified["media"]["group"][0].Children["content"][0].Attrs["url"] = "changed"

	if native["georss"]["point"][0].Value != "45.256 -71.92" {
		t.Fatal("native value was modified through the unified tree")
	}
	if native["media"]["group"][0].Children["content"][0].Attrs["url"] != "https://example.com/1.jpg" {
		t.Fatal("native attrs were modified through the unified tree")
	}
}

func TestEmptyExtensionMap(t *testing.T) {
	if m := syndication.ExtensionMapFromNative(nil); m != nil {
		t.Fatalf("expected nil map, got %v", m)
	}
	if m := syndication.ExtensionMapFromNative(ext.Extensions{}); m != nil {
		t.Fatalf("expected nil map for empty input, got %v", m)
	}
	if n := syndication.ExtensionMap(nil).ToNative(); n != nil {
		t.Fatalf("expected nil native map, got %v", n)
	}
}
