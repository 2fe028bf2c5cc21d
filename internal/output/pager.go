package output

import (
	"fmt"
	"strings"

	"github.com/noborus/ov/oviewer"
)

// ShowInPager opens content in the ov pager and blocks until it is closed.
// It takes over the terminal, so it must not run while the prompt is active.
func ShowInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Leave the screen clean on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := root.Run(); err != nil {
		return fmt.Errorf("pager failed: %w", err)
	}
	return nil
}
