package onscreen

import (
	"io"
	"log/slog"
	"os"
)

// logger receives debug output. It discards everything until a scene
// enables debug mode.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// debugEnabled mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var debugEnabled bool

func setDebugLogging(enabled bool) {
	debugEnabled = enabled
	if !enabled {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).With("lib", "onscreen")
}

// debugMaxTreeDepth is the depth past which AddChild warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "node", n.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}
