package detpost

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/edgevision/go-detpost/postprocess"
)

// LoadLabels reads the labels used to train the Model from the given text
// file.  It should contain one label per line.
func LoadLabels(file string) ([]string, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		labels = append(labels, line)
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return labels, nil
}

// CheckLabels verifies the label store covers every class index the Model
// can produce.  A store shorter than the class count would make some
// detection class indexes unresolvable, so it is surfaced as an error
// rather than silently truncated.
func CheckLabels(labels []string, numClasses int) error {

	if len(labels) < numClasses {
		return fmt.Errorf("%w: %d labels loaded for a model with %d classes",
			postprocess.ErrInvalidClassIndex, len(labels), numClasses)
	}

	return nil
}
