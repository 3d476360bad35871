// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	DescriptorNotFoundId Id = iota + 1
	DescriptorParseErrorId
	CyclicReferenceId
	UnresolvedPlaceholderId
	ConfigLoadFailedId
	RepositoryNotFoundId
	VerificationFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // reference documentation for the failing concept
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue's markdown, followed by its links, with the given
// glamour style ("dark", "light", "auto" or a style file path).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	descriptorNotFoundIssue = &Issue{
		id: DescriptorNotFoundId,
		mdMsg: `
# No descriptor found!

pomwalk needs a build descriptor to start from, and the one it was pointed at does not exist.

## Things you can try:
- Run pomwalk from the directory containing your ` + "`pom.xml`" + `
- Pass the descriptor explicitly:
~~~
$ pomwalk path/to/pom.xml
~~~

- Change the default descriptor name in your config file:
~~~cue
descriptor: "build.pom"
~~~`,
		docLinks: []HttpLink{"https://maven.apache.org/guides/introduction/introduction-to-the-pom.html"},
	}

	descriptorParseErrorIssue = &Issue{
		id: DescriptorParseErrorId,
		mdMsg: `
# Failed to parse a descriptor!

A descriptor reached during the walk is not well-formed, so its contribution to the classpath would be incomplete. The walk was stopped.

## Common issues:
- Unclosed or mismatched elements
- A truncated download left in the local repository
- A root element other than ` + "`<project>`" + `
- An XML encoding declaration other than UTF-8 or Latin-1

## Things you can try:
- Inspect the file named in the error
- Delete the damaged artifact directory from the local repository and fetch it again with your build tool`,
		docLinks: []HttpLink{"https://maven.apache.org/pom.html"},
	}

	cyclicReferenceIssue = &Issue{
		id: CyclicReferenceId,
		mdMsg: `
# Cyclic descriptor reference!

A descriptor refers back to itself through its parent or dependency chain. The chain printed above shows every descriptor involved.

## Things you can try:
- Check the ` + "`<parent>`" + ` element of each descriptor in the chain
- Remove the dependency that closes the loop
- Exclude one of the descriptors from the walk:
~~~
$ pomwalk --exclude 'com/acme/parent'
~~~`,
	}

	unresolvedPlaceholderIssue = &Issue{
		id: UnresolvedPlaceholderId,
		mdMsg: `
# Undefined property!

A ` + "`${...}`" + ` placeholder names a property that has not been defined at that point of the walk. Properties become visible in walk order: parents first, then the descriptor's own properties block.

## Things you can try:
- Define the property in the descriptor or one of its parents
- Substitute undefined placeholders with an empty string instead of failing:
~~~
$ pomwalk --lenient
~~~

- Or make lenient expansion the default in your config file:
~~~cue
placeholders: "lenient"
~~~`,
		docLinks: []HttpLink{"https://maven.apache.org/pom.html#Properties"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your configuration file could not be read or contains errors.

## Config file location:
- Linux: ` + "`~/.config/pomwalk/config.cue`" + `
- macOS: ` + "`~/Library/Application Support/pomwalk/config.cue`" + `
- Windows: ` + "`%APPDATA%\\pomwalk\\config.cue`" + `

## Things you can try:
- Check the CUE syntax in your config file
- Print the default configuration:
~~~
$ pomwalk config dump
~~~

- Reset to defaults by deleting the config file`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	repositoryNotFoundIssue = &Issue{
		id: RepositoryNotFoundId,
		mdMsg: `
# Local repository not found!

The artifact repository directory does not exist, so no artifact can be resolved.

## Things you can try:
- Build the project once with your build tool so the repository gets populated
- Point pomwalk at another repository:
~~~
$ pomwalk --repo /srv/m2/repository
~~~

- Set ` + "`POMWALK_REPOSITORY`" + ` or ` + "`repository`" + ` in your config file`,
		docLinks: []HttpLink{"https://maven.apache.org/guides/introduction/introduction-to-repositories.html"},
	}

	verificationFailedIssue = &Issue{
		id: VerificationFailedId,
		mdMsg: `
# Artifact verification failed!

At least one artifact on the classpath does not match its checksum or signature.

## Things you can try:
- Delete the artifacts listed above from the local repository and fetch them again
- Check that the keyring contains the publisher's public key:
~~~
$ pomwalk verify --keyring ~/.gnupg/pubring.asc
~~~`,
	}

	issues = map[Id]*Issue{
		descriptorNotFoundIssue.Id():    descriptorNotFoundIssue,
		descriptorParseErrorIssue.Id():  descriptorParseErrorIssue,
		cyclicReferenceIssue.Id():       cyclicReferenceIssue,
		unresolvedPlaceholderIssue.Id(): unresolvedPlaceholderIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		repositoryNotFoundIssue.Id():    repositoryNotFoundIssue,
		verificationFailedIssue.Id():    verificationFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
