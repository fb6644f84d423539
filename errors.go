package filemeta

import (
	"github.com/simonhull/filemeta/internal/types"
)

// AttributeError is an alias to types.AttributeError.
// Re-exported from internal/types to keep the public API thin.
type AttributeError = types.AttributeError

// Warning is an alias to types.Warning.
// Re-exported from internal/types to keep the public API thin.
type Warning = types.Warning
