package sfml

// Clipboard returns the system clipboard content as an owned foreign string.
func Clipboard() (*SfString, error) {
	return newSfString(lib().ClipboardUnicodeString())
}

// ClipboardString returns the clipboard content, with invalid units replaced
// by U+FFFD. It returns "" if the foreign side could not produce a string.
func ClipboardString() string {
	s, err := Clipboard()
	if err != nil {
		return ""
	}
	defer s.Dispose()
	return s.String()
}

// SetClipboardString replaces the clipboard content. Text after an embedded
// NUL is not transferred.
func SetClipboardString(text string) {
	buf := utf32z(text)
	lib().SetClipboardUnicodeString(&buf[0])
}
