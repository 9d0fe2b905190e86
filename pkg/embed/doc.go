// Package embed implements the embedded-component protocol shared by every
// template backend: the call grammar (`marker.embed(...)`), argument
// resolution against the containing template context, and the component
// handler that routes calls to the host's dispatch table.
package embed
