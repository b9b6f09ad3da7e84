// Command texcheck decodes every scene texture without a GL context and
// reports its size and upload format.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"deskscene/internal/config"
	"deskscene/internal/imaging"
	"deskscene/internal/scene"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	dirFlag := flag.String("dir", "", "texture directory (overrides config)")
	flag.Parse()

	if err := config.Init(*configPath, *dirFlag, ""); err != nil {
		slog.Error("texcheck failed", "error", err)
		os.Exit(1)
	}
	dir := config.GetTextureDir()

	failed := 0
	for _, tf := range scene.TextureFiles() {
		path := filepath.Join(dir, tf.File)
		img, err := imaging.Load(path)
		if err != nil {
			slog.Error("texture failed", "texture", string(tf.ID), "path", path, "error", err)
			failed++
			continue
		}
		format, err := imaging.FormatFor(img.Channels)
		if err != nil {
			slog.Error("texture failed", "texture", string(tf.ID), "path", path, "error", err)
			failed++
			continue
		}
		fmt.Printf("%-14s %-18s %4dx%-4d channels=%d format=%s\n",
			tf.ID, tf.File, img.Width, img.Height, img.Channels, format)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d texture(s) failed\n", failed)
		os.Exit(1)
	}
}
