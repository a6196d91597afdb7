package syndication

import ext "github.com/mmcdole/gofeed/extensions"

// Extension is one element from a non-default namespace. Children are keyed
// by element name; the order inside each list is document order.
type Extension struct {
	Name     string                 `json:"name"`
	Value    string                 `json:"value,omitempty"`
	Attrs    map[string]string      `json:"attrs,omitempty"`
	Children map[string][]Extension `json:"children,omitempty"`
}

// ExtensionMap maps namespace prefix to element name to the elements found.
type ExtensionMap map[string]map[string][]Extension

// ExtensionFromNative converts a gofeed extension and all its descendants.
// gofeed uses the same type for RSS and Atom, so this serves both formats.
func ExtensionFromNative(e ext.Extension) Extension {
	return Extension{
		Name:     e.Name,
		Value:    e.Value,
		Attrs:    copyAttrs(e.Attrs),
		Children: childrenFromNative(e.Children),
	}
}

func (e Extension) ToNative() ext.Extension {
	return ext.Extension{
		Name:     e.Name,
		Value:    e.Value,
		Attrs:    copyAttrs(e.Attrs),
		Children: childrenToNative(e.Children),
	}
}

func childrenFromNative(in map[string][]ext.Extension) map[string][]Extension {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string][]Extension, len(in))
	for name, list := range in {
		converted := make([]Extension, len(list))
		for i, child := range list {
			converted[i] = ExtensionFromNative(child)
		}
		out[name] = converted
	}
	return out
}

func childrenToNative(in map[string][]Extension) map[string][]ext.Extension {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string][]ext.Extension, len(in))
	for name, list := range in {
		converted := make([]ext.Extension, len(list))
		for i, child := range list {
			converted[i] = child.ToNative()
		}
		out[name] = converted
	}
	return out
}

func copyAttrs(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func ExtensionMapFromNative(in ext.Extensions) ExtensionMap {
	if len(in) == 0 {
		return nil
	}
	out := make(ExtensionMap, len(in))
	for ns, tags := range in {
		out[ns] = childrenFromNative(tags)
	}
	return out
}

func (m ExtensionMap) ToNative() ext.Extensions {
	if len(m) == 0 {
		return nil
	}
	out := make(ext.Extensions, len(m))
	for ns, tags := range m {
		out[ns] = childrenToNative(tags)
	}
	return out
}
