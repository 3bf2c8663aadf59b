package state

// The message vocabulary is closed: every event the editor reacts to is one
// of the types below. User gestures produce Edit/OpenRequested/NewRequested/
// SaveRequested/ThemeSelected; the pipeline produces FileOpened/FileSaved.
// All of them double as tea.Msg values so pipeline commands can deliver them
// straight into the program loop.

// Msg is a discrete event consumed by Apply.
type Msg interface{ isMsg() }

// Edit routes one edit action into the document.
type Edit struct {
	Action EditAction
}

// OpenRequested asks for the open-file dialog.
type OpenRequested struct{}

// FileOpened delivers the outcome of a dialog-pick or a direct load.
// Err is ErrDialogClosed, an *IOError, or nil on success.
type FileOpened struct {
	Path string
	Text string
	Err  error
}

// NewRequested discards the current document identity and starts blank.
type NewRequested struct{}

// SaveRequested asks for the current buffer to be persisted.
type SaveRequested struct{}

// FileSaved delivers the outcome of a save.
type FileSaved struct {
	Path string
	Err  error
}

// ThemeSelected switches the highlighting theme.
type ThemeSelected struct {
	Theme Theme
}

func (Edit) isMsg()          {}
func (OpenRequested) isMsg() {}
func (FileOpened) isMsg()    {}
func (NewRequested) isMsg()  {}
func (SaveRequested) isMsg() {}
func (FileSaved) isMsg()     {}
func (ThemeSelected) isMsg() {}

// Command is a request for one asynchronous pipeline operation. Apply returns
// at most one per transition; each scheduled command yields exactly one result
// Msg (FileOpened or FileSaved), success or failure. There is no cancellation:
// a stale result still lands and is applied as-is.
type Command interface{ isCommand() }

// PickOpen shows the open-file dialog, then loads the picked file.
type PickOpen struct{}

// Load reads Path from disk.
type Load struct {
	Path string
}

// Save writes Text to Path; an empty Path means "ask for a target first".
type Save struct {
	Path string
	Text string
}

func (PickOpen) isCommand() {}
func (Load) isCommand()     {}
func (Save) isCommand()     {}
