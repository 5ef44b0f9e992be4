package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/spf13/cobra"
)

var errDownloadFailed = errors.New("download failed")

func newDownloadCmd(app *app) *cobra.Command {
	var output string
	var batchFile string
	var numbered bool

	cmd := &cobra.Command{
		Use:   "download [url]",
		Short: "Download the video behind a GeeksforGeeks page or an .m3u8 URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), app.isTerminal(cmd.InOrStdin()))

			settings, err := app.ensureCredentials(ctx, p, app.loadSettings(ctx))
			if err != nil {
				return err
			}

			if batchFile != "" {
				if len(args) > 0 || output != "" {
					return errors.New("--batch cannot be combined with a url or --output")
				}
				urls, err := readBatchFile(batchFile)
				if err != nil {
					return err
				}
				return app.downloadBatch(ctx, cmd, urls, numbered, settings)
			}

			var rawURL string
			if len(args) == 1 {
				rawURL = args[0]
			} else if rawURL, err = p.line("Enter GeeksforGeeks video URL: "); err != nil {
				if errors.Is(err, errNotInteractive) {
					return errors.New("a video url is required")
				}
				return err
			}
			rawURL = strings.TrimSpace(rawURL)
			if err := domain.ValidateVideoURL(rawURL); err != nil {
				return err
			}

			if !cmd.Flags().Changed("output") && len(args) == 0 {
				// Prompting for the URL implies an interactive session.
				if output, err = p.line("Enter output filename (or press Enter for default): "); err != nil {
					return err
				}
			}
			name, err := domain.NormalizeFilename(output)
			if err != nil {
				return err
			}

			if !app.workflow(cmd.OutOrStdout()).Run(ctx, rawURL, name, settings) {
				return errDownloadFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output filename inside the output directory")
	cmd.Flags().StringVar(&batchFile, "batch", "", "File with one URL per line, downloaded in order")
	cmd.Flags().BoolVar(&numbered, "numbered", false, "Name batch outputs video_1.mp4, video_2.mp4 and so on instead of after each page")

	return cmd
}

func (a *app) downloadBatch(ctx context.Context, cmd *cobra.Command, urls []string, numbered bool, settings domain.Settings) error {
	out := cmd.OutOrStdout()
	workflow := a.workflow(out)

	used := make(map[string]bool, len(urls))
	succeeded := 0
	for i, rawURL := range urls {
		if ctx.Err() != nil {
			break
		}

		_, _ = fmt.Fprintf(out, "\nDownloading video %d/%d: %s\n", i+1, len(urls), rawURL)
		if err := domain.ValidateVideoURL(rawURL); err != nil {
			a.logger.Warn("skipping invalid url", "url", rawURL, "error", err)
			continue
		}

		name := batchOutputName(rawURL, i+1, numbered, used)
		used[name] = true
		if workflow.Run(ctx, rawURL, name, settings) {
			succeeded++
		}
	}

	_, _ = fmt.Fprintf(out, "\n%d/%d videos downloaded\n", succeeded, len(urls))
	if succeeded != len(urls) {
		return errDownloadFailed
	}
	return nil
}

// batchOutputName gives every batch entry its own file so a tool default
// such as video.mp4 is never reused. Pages are named after their last path
// segment unless numbered is set; clashes get the position appended.
func batchOutputName(rawURL string, position int, numbered bool, used map[string]bool) string {
	numberedName := fmt.Sprintf("video_%d%s", position, domain.DefaultVideoExtension)
	if numbered {
		return numberedName
	}

	slug := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		slug = path.Base(strings.TrimRight(parsed.Path, "/"))
		slug = strings.TrimSuffix(slug, path.Ext(slug))
	}
	slug = strings.Map(func(r rune) rune {
		if strings.ContainsRune(domain.InvalidFilenameChars, r) || r < ' ' {
			return '_'
		}
		return r
	}, strings.TrimSpace(slug))
	if slug == "" || slug == "." || slug == "/" {
		return numberedName
	}

	name, err := domain.NormalizeFilename(slug)
	if err != nil || name == "" {
		return numberedName
	}
	if used[name] {
		name = fmt.Sprintf("%s_%d%s", slug, position, domain.DefaultVideoExtension)
	}
	if used[name] {
		return numberedName
	}
	return name
}

// readBatchFile returns the non-empty lines that are not # comments.
func readBatchFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	if len(urls) == 0 {
		return nil, errors.New("batch file has no urls")
	}
	return urls, nil
}

// ensureCredentials prompts for missing credentials and saves them.
// Environment overrides satisfy the check without being persisted.
func (a *app) ensureCredentials(ctx context.Context, p *prompter, settings domain.Settings) (domain.Settings, error) {
	if settings.HasCredentials() {
		return settings, nil
	}
	if !p.interactive {
		return settings, fmt.Errorf("%w: run `gfgdl config set email <email>` and `gfgdl config set password <password>`", domain.ErrMissingCredential)
	}

	_, _ = fmt.Fprintln(p.out, "First time setup - please enter your GeeksforGeeks credentials:")
	if settings.Email == "" {
		email, err := p.line("Email: ")
		if err != nil {
			return settings, err
		}
		settings.Email = email
	}
	if settings.Password == "" {
		password, err := p.secret("Password: ")
		if err != nil {
			return settings, err
		}
		settings.Password = password
	}
	if !settings.HasCredentials() {
		return settings, domain.ErrMissingCredential
	}

	for key, value := range map[string]string{domain.KeyEmail: settings.Email, domain.KeyPassword: settings.Password} {
		if _, err := a.settings.Set(ctx, key, value); err != nil {
			a.logger.Warn("could not save credentials", "path", a.settings.Path(), "error", err)
			break
		}
	}
	return settings, nil
}
