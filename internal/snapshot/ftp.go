package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/jlaffaye/ftp"
)

// FTPSource locates a snapshot file published to an FTP drop.
type FTPSource struct {
	Addr     string
	User     string
	Password string
	Path     string
	Timeout  time.Duration
}

// FetchFTP downloads and decodes a JSON snapshot. Anonymous login is used
// when no user is set.
func FetchFTP(ctx context.Context, src FTPSource) (Snapshot, error) {
	timeout := src.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	user, pass := src.User, src.Password
	if user == "" {
		user, pass = "anonymous", "anonymous"
	}

	conn, err := ftp.Dial(src.Addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(timeout))
	if err != nil {
		return Snapshot{}, fmt.Errorf("ftp dial: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login(user, pass); err != nil {
		return Snapshot{}, fmt.Errorf("ftp login: %w", err)
	}

	resp, err := conn.Retr(src.Path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("ftp retr: %w", err)
	}
	defer resp.Close()

	snap, err := Decode(resp)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Source = SourceFTP
	return snap, nil
}
