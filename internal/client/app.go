package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/service"
	"github.com/MKhiriev/go-file-vault/models"
)

var errNoServices = errors.New("client: services are required")

// usersLookupLimit bounds the directory page scanned when a recipient is
// given by username.
const usersLookupLimit = 100

type App struct {
	services *service.ClientServices
	browser  Browser
	out      io.Writer
	errOut   io.Writer
	logger   *logger.Logger
}

// NewApp builds the command runner. browser may be nil when the browse
// command is not offered; out receives command output and errOut progress.
func NewApp(services *service.ClientServices, browser Browser, out, errOut io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &App{services: services, browser: browser, out: out, errOut: errOut, logger: logger}, nil
}

// ─────────────────────────────────────────────
// identity
// ─────────────────────────────────────────────

func (a *App) SignUp(ctx context.Context, login, password string) error {
	principal, err := a.services.IdentityService.SignUp(ctx, login, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed up as %s (%s)\n", login, principal)
	fmt.Fprintln(a.out, "Pick a username with `vault register <username>` to get your storage.")
	return nil
}

func (a *App) Login(ctx context.Context, login, password string) error {
	principal, err := a.services.IdentityService.Login(ctx, login, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", login, principal)

	user, err := a.services.ProvisioningService.WhoAmI(ctx)
	if errors.Is(err, service.ErrUserNotRegistered) {
		fmt.Fprintln(a.out, "No username yet: run `vault register <username>`.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Username: %s\n", user.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.services.IdentityService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Register picks a username and waits for the storage resource that comes
// with it.
func (a *App) Register(ctx context.Context, username string) error {
	if _, err := a.services.IdentityService.Restore(ctx); err != nil {
		return err
	}

	result, err := a.services.ProvisioningService.Register(ctx, username)
	if err != nil {
		return err
	}
	if err = service.ResultError(result); err != nil {
		return fmt.Errorf("username %s registered, storage not ready: %w", username, err)
	}

	fmt.Fprintf(a.out, "Registered %s\nStorage: %s\n", username, result.Resource)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	session, err := a.services.IdentityService.Restore(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Login:     %s\nPrincipal: %s\n", session.Login, session.Principal)

	user, err := a.services.ProvisioningService.WhoAmI(ctx)
	if errors.Is(err, service.ErrUserNotRegistered) {
		fmt.Fprintln(a.out, "Username:  -")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Username:  %s\n", user.Username)
	return nil
}

// ─────────────────────────────────────────────
// files
// ─────────────────────────────────────────────

func (a *App) ListOwned(ctx context.Context) error {
	if _, err := a.open(ctx); err != nil {
		return err
	}

	records, err := a.services.SharingService.ListOwned(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tCHUNKS\tSHARED WITH")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d\t%s\n", r.FileID, r.FileName, r.Status, r.UploadedChunks, r.NumChunks, usernames(r.SharedWith))
	}
	return tw.Flush()
}

func (a *App) ListShared(ctx context.Context) error {
	if _, err := a.services.IdentityService.Restore(ctx); err != nil {
		return err
	}

	shared, err := a.services.SharingService.ListSharedIn(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REF\tNAME\tOWNER\tSHARED WITH")
	for _, sr := range shared {
		for _, f := range sr.Files {
			fmt.Fprintf(tw, "%s/%d\t%s\t%s\t%s\n", sr.Resource, f.FileID, f.FileName, sr.Owner.Username, usernames(f.SharedWith))
		}
	}
	return tw.Flush()
}

// Put encrypts and uploads the file at path to the caller's storage.
// Cancelling ctx aborts the upload between chunks.
func (a *App) Put(ctx context.Context, path, name string) error {
	resource, err := a.open(ctx)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	if name == "" {
		name = filepath.Base(path)
	}

	abort := models.NewAbortToken()
	stop := context.AfterFunc(ctx, abort.Abort)
	defer stop()

	result, err := a.services.TransferService.Upload(ctx, models.UploadRequest{
		Resource:    resource,
		FileName:    name,
		ContentType: contentType(path, content),
		Content:     content,
	}, abort)
	if err != nil {
		return err
	}

	return a.reportUpload(name, result)
}

// Get downloads a file by reference: the file id for an owned file or
// "<resource>/<id>" for a shared one. dest "-" writes to out; an empty dest
// saves under the file's name in the working directory.
func (a *App) Get(ctx context.Context, ref, dest string) error {
	if _, err := a.open(ctx); err != nil && !errors.Is(err, service.ErrUserNotRegistered) {
		return err
	}

	resource, fileID, err := parseFileRef(ref)
	if err != nil {
		return err
	}
	fileRef, err := a.services.SharingService.ResolveFile(ctx, resource, fileID)
	if err != nil {
		return err
	}

	bar := newProgressPrinter(a.errOut, fileRef.FileName)
	file, err := a.services.TransferService.Download(ctx, fileRef, bar.update)
	bar.finish()
	if err != nil {
		return err
	}

	if dest == "-" {
		_, err = a.out.Write(file.Contents)
		return err
	}
	if dest == "" {
		dest = filepath.Base(file.FileName)
	}
	if err = os.WriteFile(dest, file.Contents, 0o600); err != nil {
		return fmt.Errorf("error writing %s: %w", dest, err)
	}

	fmt.Fprintf(a.out, "Saved %s (%d bytes)\n", dest, len(file.Contents))
	return nil
}

func (a *App) Remove(ctx context.Context, ref string) error {
	fileID, err := a.ownedFileID(ctx, ref)
	if err != nil {
		return err
	}
	if err = a.services.SharingService.Delete(ctx, fileID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted file %d\n", fileID)
	return nil
}

// ─────────────────────────────────────────────
// sharing
// ─────────────────────────────────────────────

// Share grants recipients, given as usernames or principals, read access.
func (a *App) Share(ctx context.Context, ref string, recipients []string) error {
	fileID, err := a.ownedFileID(ctx, ref)
	if err != nil {
		return err
	}
	principals, err := a.resolveRecipients(ctx, recipients)
	if err != nil {
		return err
	}
	if err = a.services.SharingService.Share(ctx, fileID, principals); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Shared file %d with %s\n", fileID, strings.Join(recipients, ", "))
	return nil
}

func (a *App) Revoke(ctx context.Context, ref string, recipients []string) error {
	fileID, err := a.ownedFileID(ctx, ref)
	if err != nil {
		return err
	}
	principals, err := a.resolveRecipients(ctx, recipients)
	if err != nil {
		return err
	}
	if err = a.services.SharingService.Revoke(ctx, fileID, principals); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Revoked access to file %d for %s\n", fileID, strings.Join(recipients, ", "))
	return nil
}

func (a *App) Users(ctx context.Context, query models.UsersQuery) error {
	if _, err := a.services.IdentityService.Restore(ctx); err != nil {
		return err
	}

	page, err := a.services.SharingService.FindUsers(ctx, query)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tPRINCIPAL")
	for _, u := range page.Users {
		fmt.Fprintf(tw, "%s\t%s\n", u.Username, u.Principal)
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	if page.NextOffset > 0 && page.NextOffset < page.Total {
		fmt.Fprintf(a.out, "%d of %d users, next page: --offset %d\n", len(page.Users), page.Total, page.NextOffset)
	}
	return nil
}

// ─────────────────────────────────────────────
// requested uploads
// ─────────────────────────────────────────────

func (a *App) Request(ctx context.Context, fileName string) error {
	if _, err := a.open(ctx); err != nil {
		return err
	}

	ref, err := a.services.RequestService.RequestUpload(ctx, fileName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Requested %s as file %d\n", fileName, ref.FileID)
	fmt.Fprintf(a.out, "Send this to the uploader: vault claim %s <path>\n", ref)
	return nil
}

// Claim uploads the file at path for someone else's request. The uploader
// cannot read the file afterwards.
func (a *App) Claim(ctx context.Context, rawRef, path string) error {
	if _, err := a.services.IdentityService.Restore(ctx); err != nil {
		return err
	}

	ref, err := models.ParseUploadRequestRef(rawRef)
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrAliasNotFound, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	abort := models.NewAbortToken()
	stop := context.AfterFunc(ctx, abort.Abort)
	defer stop()

	result, err := a.services.RequestService.Claim(ctx, ref, contentType(path, content), content, abort)
	if err != nil {
		return err
	}

	return a.reportUpload(filepath.Base(path), result)
}

// Browse opens the interactive browser. An unregistered caller still sees
// the files shared with them.
func (a *App) Browse(ctx context.Context) error {
	if a.browser == nil {
		return errors.New("browser is not available")
	}
	if _, err := a.open(ctx); err != nil && !errors.Is(err, service.ErrUserNotRegistered) {
		return err
	}
	return a.browser.Browse(ctx)
}

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

// open restores the saved session and resolves the caller's resource.
func (a *App) open(ctx context.Context) (models.ResourceHandle, error) {
	if _, err := a.services.IdentityService.Restore(ctx); err != nil {
		return "", err
	}

	result, err := a.services.ProvisioningService.Resolve(ctx)
	if err != nil {
		return "", err
	}
	if err = service.ResultError(result); err != nil {
		return "", err
	}

	a.logger.Debug().Str("resource", result.Resource.String()).Int("attempts", result.Attempts).Msg("resource resolved")
	return result.Resource, nil
}

func (a *App) ownedFileID(ctx context.Context, ref string) (models.FileID, error) {
	if _, err := a.open(ctx); err != nil {
		return 0, err
	}

	resource, fileID, err := parseFileRef(ref)
	if err != nil {
		return 0, err
	}
	if own, _ := a.services.Session.Resource(); resource != "" && resource != own.String() {
		return 0, fmt.Errorf("%w: file %s is not yours", service.ErrPermissionDenied, ref)
	}
	return fileID, nil
}

// resolveRecipients maps usernames to principals. Arguments that already
// are principals pass through.
func (a *App) resolveRecipients(ctx context.Context, recipients []string) ([]models.Principal, error) {
	principals := make([]models.Principal, 0, len(recipients))
	for _, r := range recipients {
		if id, err := uuid.Parse(r); err == nil {
			principals = append(principals, models.Principal(id.String()))
			continue
		}

		page, err := a.services.SharingService.FindUsers(ctx, models.UsersQuery{Query: r, Limit: usersLookupLimit})
		if err != nil {
			return nil, fmt.Errorf("error looking up %s: %w", r, err)
		}
		principal, ok := findUsername(page.Users, r)
		if !ok {
			return nil, fmt.Errorf("%w: %s", service.ErrNoSuchRecipient, r)
		}
		principals = append(principals, principal)
	}
	return principals, nil
}

func findUsername(users []models.PublicUser, username string) (models.Principal, bool) {
	want := service.UsernameKey(username)
	for _, u := range users {
		if service.UsernameKey(u.Username) == want {
			return u.Principal, true
		}
	}
	return models.Anonymous, false
}

func (a *App) reportUpload(name string, result models.UploadResult) error {
	if result.Phase == models.UploadAborted {
		fmt.Fprintf(a.out, "Upload of %s aborted after %d of %d chunks\n", name, result.Delivered, result.NumChunks)
		return context.Canceled
	}

	fmt.Fprintf(a.out, "Uploaded %s as file %d (%d chunks)\n", name, result.FileID, result.NumChunks)
	return nil
}

// parseFileRef splits "<resource>/<id>" or a bare "<id>".
func parseFileRef(ref string) (string, models.FileID, error) {
	resource, id, found := strings.Cut(strings.TrimSpace(ref), "/")
	if !found {
		id, resource = resource, ""
	}

	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: invalid file reference %q", service.ErrFileNotFound, ref)
	}
	return resource, models.FileID(n), nil
}

func contentType(path string, content []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return http.DetectContentType(content)
}

func usernames(users []models.PublicUser) string {
	if len(users) == 0 {
		return "-"
	}
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	return strings.Join(names, ", ")
}
