package vfs

import (
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

func knownhostsCallback(path string) (ssh.HostKeyCallback, error) {
	return knownhosts.New(path)
}
