package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path"

	"github.com/spf13/cobra"
)

var filesGetOutput string

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage documents and recordings in the blob store",
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored files",
	RunE:  runFilesList,
}

var filesGetCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Download a stored file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesGet,
}

var filesRmCmd = &cobra.Command{
	Use:   "rm <url>",
	Short: "Delete a stored file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesRm,
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesGetCmd)
	filesCmd.AddCommand(filesRmCmd)

	filesGetCmd.Flags().StringVarP(&filesGetOutput, "output", "o", "", "output path (default: file name from the URL)")
}

func runFilesList(cmd *cobra.Command, args []string) error {
	ctx, a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	lib, err := a.Library()
	if err != nil {
		return err
	}

	files, err := lib.Files(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Brak zapisanych plików")
		return nil
	}

	for _, f := range files {
		fmt.Printf("%s  %s  %s\n    %s\n",
			f.Pathname, formatSize(f.Size), f.UploadedAt.Format("2006-01-02 15:04"), f.URL)
	}
	fmt.Printf("Znaleziono %d plików\n", len(files))
	return nil
}

func runFilesGet(cmd *cobra.Command, args []string) error {
	ctx, a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	lib, err := a.Library()
	if err != nil {
		return err
	}

	data, err := lib.Fetch(ctx, args[0])
	if err != nil {
		return err
	}

	out := filesGetOutput
	if out == "" {
		out = fileNameFromURL(args[0])
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	fmt.Printf("Zapisano plik: %s (%d bajtów)\n", out, len(data))
	return nil
}

func runFilesRm(cmd *cobra.Command, args []string) error {
	ctx, a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	lib, err := a.Library()
	if err != nil {
		return err
	}

	if err := lib.Remove(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Plik usunięty")
	return nil
}

func formatSize(size int64) string {
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}

// fileNameFromURL picks a local file name for a downloaded blob.
func fileNameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "plik"
	}
	return path.Base(u.Path)
}
