package state

// Apply is the transition function: it consumes one message, returns the next
// state and at most one pipeline command to schedule. It is total over the
// message vocabulary and has no side effects; all blocking or fallible work
// lives behind the returned Command so the update loop never stalls and every
// failure comes back around as an ordinary message.
func Apply(s State, msg Msg) (State, Command) {
	switch m := msg.(type) {
	case Edit:
		s.Doc = s.Doc.Apply(m.Action)
		s.Err = nil
		if m.Action.IsEdit() {
			s.Saved = false
		}
		return s, nil

	case OpenRequested:
		return s, PickOpen{}

	case FileOpened:
		if m.Err != nil {
			s.Err = m.Err
			return s, nil
		}
		s.Path = m.Path
		s.Doc = s.Doc.WithText(m.Text)
		s.Saved = true
		return s, nil

	case NewRequested:
		s.Path = ""
		s.Doc = s.Doc.WithText("")
		s.Saved = false
		return s, nil

	case SaveRequested:
		return s, Save{Path: s.Path, Text: s.Doc.Text()}

	case FileSaved:
		if m.Err != nil {
			s.Err = m.Err
			return s, nil
		}
		s.Path = m.Path
		s.Saved = true
		return s, nil

	case ThemeSelected:
		s.Theme = m.Theme
		return s, nil
	}

	return s, nil
}
