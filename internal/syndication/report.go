package syndication

// DroppedField describes a native value that could not be carried over into
// the unified model.
type DroppedField struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// Report collects what a conversion silently discarded. The plain converters
// throw it away; the WithReport variants hand it to the caller.
type Report struct {
	Dropped []DroppedField `json:"dropped,omitempty"`
}

func (r *Report) drop(field, value, reason string) {
	r.Dropped = append(r.Dropped, DroppedField{Field: field, Value: value, Reason: reason})
}

// Empty reports whether nothing was dropped.
func (r Report) Empty() bool { return len(r.Dropped) == 0 }
