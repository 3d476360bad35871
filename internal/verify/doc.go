// SPDX-License-Identifier: MPL-2.0

// Package verify checks resolved artifacts against the sidecar files a local
// repository keeps next to them: .sha1 and .md5 digests, and .asc detached
// OpenPGP signatures when a keyring is supplied.
//
// An artifact with no sidecars is reported as unverified, which is not a
// failure. Any digest mismatch or bad signature fails the artifact.
package verify
