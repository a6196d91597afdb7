package syndication

import (
	"slices"

	ext "github.com/mmcdole/gofeed/extensions"
)

// cloneITunes copies an iTunes item block; every field is a string.
func cloneITunes(in *ext.ITunesItemExtension) *ext.ITunesItemExtension {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}

func cloneDublinCore(in *ext.DublinCoreExtension) *ext.DublinCoreExtension {
	if in == nil {
		return nil
	}
	return &ext.DublinCoreExtension{
		Title:       slices.Clone(in.Title),
		Creator:     slices.Clone(in.Creator),
		Author:      slices.Clone(in.Author),
		Subject:     slices.Clone(in.Subject),
		Description: slices.Clone(in.Description),
		Publisher:   slices.Clone(in.Publisher),
		Contributor: slices.Clone(in.Contributor),
		Date:        slices.Clone(in.Date),
		Type:        slices.Clone(in.Type),
		Format:      slices.Clone(in.Format),
		Identifier:  slices.Clone(in.Identifier),
		Source:      slices.Clone(in.Source),
		Language:    slices.Clone(in.Language),
		Relation:    slices.Clone(in.Relation),
		Coverage:    slices.Clone(in.Coverage),
		Rights:      slices.Clone(in.Rights),
	}
}
