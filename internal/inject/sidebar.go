package inject

import "fmt"

// SidebarMarker is the comment in the sidebar partial that links are inserted before.
const SidebarMarker = "                <%# generate_link %>\n"

// SidebarLinkLine returns the sidebar entry rendering a resource's menu link partial.
func SidebarLinkLine(scopePath string) string {
	return fmt.Sprintf("                <li><%%= render 'components/menu/link_to_%s' %%></li>\n", scopePath)
}

// SidebarEdit returns the edit that adds a resource link to the sidebar.
func SidebarEdit(scopePath string) Edit {
	return Edit{Position: Before, Anchor: SidebarMarker, Text: SidebarLinkLine(scopePath)}
}

// InjectSidebarLink adds a resource link to sidebar content.
func InjectSidebarLink(content, scopePath string) (string, Outcome) {
	updated, status := Apply(content, SidebarEdit(scopePath))
	out := Outcome{Status: status}
	if status == StatusSkipped {
		out.Warning = "sidebar marker <%# generate_link %> not found, add the menu link manually"
	}
	return updated, out
}
