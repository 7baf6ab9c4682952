package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"chris-cli/models"
	"chris-cli/processor"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func lsCmd() *cobra.Command {
	var (
		sortField string
		reverse   bool
		long      bool
	)
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List directories, files, and links at a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd)
			if err != nil {
				return err
			}

			var target string
			if len(args) == 1 {
				target = args[0]
			}
			result, err := proc.List(cmd.Context(), target, processor.ListOptions{
				SortField: sortField,
				Reverse:   reverse,
			})
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				logger.Warn(w)
			}
			renderListing(result, long)
			return nil
		},
	}
	cmd.Flags().StringVarP(&sortField, "sort", "s", "", "sort field: name, type, size, owner, date, target")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "reverse sort order")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "long listing with size, owner, and date")
	return cmd
}

func renderListing(result *processor.ListResult, long bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	for _, item := range result.Items {
		name := item.Name
		switch item.Type {
		case models.KindDir:
			name += "/"
		case models.KindLink:
			name += " -> " + item.Target
		}
		if !long {
			fmt.Fprintln(w, name)
			continue
		}
		size := "-"
		if item.Type == models.KindFile {
			size = humanize.Bytes(uint64(item.Size))
		}
		date := "-"
		if !item.Date.IsZero() {
			date = item.Date.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", item.Type, size, item.Owner, date, name)
	}
}

func mvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <src> <dst>",
		Short: "Move or rename a remote directory, file, or link",
		Long: `Move src to dst. When dst is an existing directory, or ends with a
slash, src is moved into it under its own name; otherwise dst is the
new full path.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd)
			if err != nil {
				return err
			}
			final, err := proc.Move(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(final)
			return nil
		},
	}
}

func rmCmd() *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Remove remote files, links, or (with -r) directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				removed, err := proc.Remove(cmd.Context(), arg, recursive)
				if err != nil {
					return err
				}
				logger.Infof("removed %s %s", removed.Kind, removed.Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove directories and their contents")
	return cmd
}

func touchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <path>...",
		Short: "Create empty remote files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				abs, err := proc.Touch(cmd.Context(), arg)
				if err != nil {
					return err
				}
				logger.Debugf("touched %s", abs)
			}
			return nil
		},
	}
}

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <local path> [remote path]",
		Short: "Upload a local file or directory tree",
		Long: `Upload a local file or directory. A directory keeps its own basename
on the remote side, like cp: uploading /a/b/mydir to /x lands files
under /x/mydir/. Without a remote path, files land in the current
virtual working directory.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd)
			if err != nil {
				return err
			}
			var remote string
			if len(args) == 2 {
				remote = args[1]
			}
			stats, err := proc.Upload(cmd.Context(), args[0], remote)
			if err != nil {
				return err
			}
			fmt.Printf("uploaded %d/%d files (%s)\n",
				stats.UploadedFiles, stats.TotalFiles, humanize.Bytes(uint64(stats.SentBytes)))
			if stats.ErrorFiles > 0 {
				return fmt.Errorf("%d files failed to upload", stats.ErrorFiles)
			}
			return nil
		},
	}
}

func catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>...",
		Short: "Print remote file contents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				body, err := proc.Cat(cmd.Context(), arg)
				if err != nil {
					return err
				}
				_, copyErr := io.Copy(os.Stdout, body)
				body.Close()
				if copyErr != nil {
					return copyErr
				}
			}
			return nil
		},
	}
}

func cdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cd <path>",
		Short: "Change the current virtual working directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd)
			if err != nil {
				return err
			}
			abs, err := proc.ChangeDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return persistCwd(abs)
		},
	}
}

func pwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pwd",
		Short: "Print the current virtual working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(cwdFromConfig())
			return nil
		},
	}
}
