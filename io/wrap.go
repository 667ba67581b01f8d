package climakeio

import stdio "io"

// WriteWrapped hard-wraps text for terminal display and writes it to w. The
// text is split into byte chunks of width minus the indent length, each chunk
// prefixed with indent and terminated with a newline. Wrapping is byte-based,
// not word-based: help lines favor predictable output over typography.
//
// Empty text produces no output.
func WriteWrapped(w stdio.Writer, text string, width int, indent string) error {
	chunk := width - len(indent)
	if chunk < 1 {
		chunk = 1
	}

	for start := 0; start < len(text); start += chunk {
		end := start + chunk
		if end > len(text) {
			end = len(text)
		}
		if _, err := stdio.WriteString(w, indent); err != nil {
			return err
		}
		if _, err := stdio.WriteString(w, text[start:end]); err != nil {
			return err
		}
		if _, err := stdio.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
