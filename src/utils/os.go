package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func ReadLine(in io.Reader, output *string) error {
	reader := bufio.NewReader(in)
	o, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && o != "") {
		*output = ""
		return err
	}

	*output = strings.TrimSpace(o)
	return nil
}

// Confirm prints prompt and reports whether the answer starts with y.
func Confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	var answer string
	if err := ReadLine(in, &answer); err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("Confirm: failed to read answer: %w", err)
	}

	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}
