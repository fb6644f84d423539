package xattrstore

import (
	"errors"
	"testing"

	"github.com/pkg/xattr"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestIsAbsent(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"missing attribute", &xattr.Error{Op: "xattr.get", Name: "k", Err: xattr.ENOATTR}, true},
		{"filesystem without xattr support", &xattr.Error{Op: "xattr.get", Name: "k", Err: unix.ENOTSUP}, true},
		{"operation not supported", &xattr.Error{Op: "xattr.get", Name: "k", Err: unix.EOPNOTSUPP}, true},
		{"io failure", &xattr.Error{Op: "xattr.get", Name: "k", Err: unix.EIO}, false},
		{"unrelated error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isAbsent(tc.err))
		})
	}
}

func TestIsUnsupported(t *testing.T) {
	assert.True(t, isUnsupported(&xattr.Error{Op: "xattr.list", Err: unix.ENOTSUP}))
	assert.False(t, isUnsupported(&xattr.Error{Op: "xattr.list", Err: unix.ENOENT}))
}
