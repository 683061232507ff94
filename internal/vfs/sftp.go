package vfs

import (
	"io"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTPDialOpts configures a remote connection.
type SFTPDialOpts struct {
	Addr           string // host:port
	User           string
	Password       string // used when KeyPath is empty
	KeyPath        string
	Passphrase     string
	KnownHostsPath string // empty disables host key verification
}

// DialSFTP opens an SSH session and wraps it in an SFTP client. When
// KnownHostsPath is set, the host key is verified against it; otherwise
// the connection proceeds without verification, kept explicit and opt-in
// rather than hardwired, since a config-driven known_hosts file is one
// stat call away once a user actually sets one up.
func DialSFTP(opts SFTPDialOpts) (*SFTP, error) {
	auth, err := authMethod(opts)
	if err != nil {
		return nil, err
	}
	hostKeyCallback, err := hostKeyCallback(opts.KnownHostsPath)
	if err != nil {
		return nil, err
	}
	cfg := &ssh.ClientConfig{
		User:            opts.User,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         15 * time.Second,
	}
	conn, err := ssh.Dial("tcp", opts.Addr, cfg)
	if err != nil {
		return nil, err
	}
	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &SFTP{client: client, conn: conn}, nil
}

func authMethod(opts SFTPDialOpts) ([]ssh.AuthMethod, error) {
	if opts.KeyPath != "" {
		raw, err := os.ReadFile(opts.KeyPath)
		if err != nil {
			return nil, err
		}
		var signer ssh.Signer
		if opts.Passphrase != "" {
			signer, err = ssh.ParsePrivateKeyWithPassphrase(raw, []byte(opts.Passphrase))
		} else {
			signer, err = ssh.ParsePrivateKey(raw)
		}
		if err != nil {
			return nil, err
		}
		return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
	}
	return []ssh.AuthMethod{ssh.Password(opts.Password)}, nil
}

func hostKeyCallback(knownHostsPath string) (ssh.HostKeyCallback, error) {
	if knownHostsPath == "" {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	return knownhostsCallback(knownHostsPath)
}

// SFTP implements FS over an SSH/SFTP session.
type SFTP struct {
	client *sftp.Client
	conn   *ssh.Client
}

func (s *SFTP) ReadDir(dir string) ([]fs.DirEntry, error) {
	infos, err := s.client.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, fi := range infos {
		entries[i] = fs.FileInfoToDirEntry(fi)
	}
	return entries, nil
}

func (s *SFTP) Stat(p string) (fs.FileInfo, error) { return s.client.Stat(p) }

func (s *SFTP) OpenRead(p string) (io.ReadCloser, error) { return s.client.Open(p) }

func (s *SFTP) OpenWrite(p string) (io.WriteCloser, error) {
	return s.client.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

func (s *SFTP) Mkdir(p string) error { return s.client.MkdirAll(p) }

func (s *SFTP) Remove(p string) error {
	fi, err := s.client.Stat(p)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return s.removeDir(p)
	}
	return s.client.Remove(p)
}

func (s *SFTP) removeDir(p string) error {
	entries, err := s.client.ReadDir(p)
	if err != nil {
		return err
	}
	for _, e := range entries {
		child := path.Join(p, e.Name())
		if e.IsDir() {
			if err := s.removeDir(child); err != nil {
				return err
			}
		} else if err := s.client.Remove(child); err != nil {
			return err
		}
	}
	return s.client.RemoveDirectory(p)
}

func (s *SFTP) Rename(oldPath, newPath string) error { return s.client.Rename(oldPath, newPath) }

func (s *SFTP) Walk(root string, fn WalkFunc) error {
	walker := s.client.Walk(root)
	for walker.Step() {
		if err := walker.Err(); err != nil {
			if err := fn(walker.Path(), nil, err); err != nil {
				return err
			}
			continue
		}
		if err := fn(walker.Path(), walker.Stat(), nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *SFTP) Getwd() (string, error) { return s.client.Getwd() }

func (s *SFTP) Chdir(dir string) error {
	_, err := s.client.Stat(dir)
	return err
}

func (s *SFTP) Close() error {
	cerr := s.client.Close()
	if err := s.conn.Close(); err != nil {
		return err
	}
	return cerr
}
