package tableview

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

var _encoder = base64.RawURLEncoding

// PageState is the view state owned by a Table: the filter text, the active
// sort and the current page.
//
// A PageState can be turned into an opaque token with String and restored with
// DecodePageState, so a view can be reopened where it was left.
type PageState struct {
	Query         string    `json:"q,omitempty"`
	SortField     string    `json:"sort,omitempty"`
	SortDirection Direction `json:"dir,omitempty"`
	CurrentPage   int       `json:"page,omitempty"`
}

// Sort returns the active sort of the state.
func (s PageState) Sort() SortSpec {
	return SortSpec{Field: s.SortField, Direction: s.SortDirection}
}

// IsEmpty reports whether the state carries nothing beyond defaults.
func (s PageState) IsEmpty() bool {
	return s == PageState{}
}

// String - implements fmt.Stringer. Returns the base64 encoded token, or an
// empty string for an empty state.
func (s PageState) String() string {
	if s.IsEmpty() {
		return ""
	}

	jTok, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Errorf("cannot marshal page state: %w", err))
	}

	var buf bytes.Buffer
	if err = json.Compact(&buf, jTok); err != nil {
		panic(fmt.Errorf("cannot compact page state: %w", err))
	}

	return _encoder.EncodeToString(buf.Bytes())
}

// DecodePageState parses a token produced by PageState.String. An empty token
// decodes into an empty state.
func DecodePageState(token string) (PageState, error) {
	if len(token) == 0 {
		return PageState{}, nil
	}

	jsonData, err := _encoder.DecodeString(token)
	if err != nil {
		return PageState{}, fmt.Errorf("%w: failed to decode base64 encoded token: %w", ErrInvalidPageState, err)
	}

	var state PageState
	if err = json.Unmarshal(jsonData, &state); err != nil {
		return PageState{}, fmt.Errorf("%w: failed to unmarshal json encoded token: %w", ErrInvalidPageState, err)
	}

	if err = state.validate(); err != nil {
		return PageState{}, err
	}

	return state, nil
}

func (s PageState) validate() error {
	if s.SortDirection != "" && !s.SortDirection.Valid() {
		return fmt.Errorf("%w: direction %q", ErrInvalidPageState, s.SortDirection)
	}

	if s.CurrentPage < 0 {
		return fmt.Errorf("%w: page %d", ErrInvalidPageState, s.CurrentPage)
	}

	return nil
}

var _ fmt.Stringer = PageState{}
