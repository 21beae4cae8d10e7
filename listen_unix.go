//go:build unix

package udsock

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// listenPath creates, binds and starts listening on a Unix domain socket at
// path. Any stale file at the path is unlinked first; a removal failure
// other than "not found" is fatal. The socket is created through raw
// syscalls instead of net.Listen so the configured backlog is honored, then
// wrapped back into a *net.UnixListener.
func listenPath(path string, mode fs.FileMode, backlog int) (*net.UnixListener, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %q: %w", ErrStaleSocket, path, err)
	}

	if backlog <= 0 {
		backlog = unix.SOMAXCONN
	}

	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("%w %q: socket: %w", ErrBind, path, err)
	}

	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("%w %q: %w", ErrBind, path, err)
	}

	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		os.Remove(path)
		return nil, fmt.Errorf("%w %q: listen: %w", ErrBind, path, err)
	}

	if mode != 0 {
		if err := os.Chmod(path, mode); err != nil {
			unix.Close(fd)
			os.Remove(path)
			return nil, fmt.Errorf("%w %q: chmod: %w", ErrBind, path, err)
		}
	}

	f := os.NewFile(uintptr(fd), path)
	ln, err := net.FileListener(f)
	// FileListener dups the descriptor; the original must go either way.
	f.Close()
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w %q: %w", ErrBind, path, err)
	}

	return ln.(*net.UnixListener), nil
}
