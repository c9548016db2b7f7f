package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Initializer(t *testing.T) {
	out, err := Render("init/config/initializers/sun_sword.rb", Data{
		ScopeOwnerColumn: "user_id",
		ScopeOwner:       "current_user",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "SunSword.setup do |config|")
	assert.Contains(t, out, "config.scope_owner_column = 'user_id'")
	assert.Contains(t, out, "config.scope_owner = 'current_user'")
}

func TestRender_Missing(t *testing.T) {
	_, err := Render("frontend/nope", Data{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frontend/nope")
}

func TestRender_GemfileBlockHasMarker(t *testing.T) {
	out, err := Render("frontend/gemfile.rb", Data{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "\n# --- SunSword Package frontend\n"))
	assert.Contains(t, out, `gem "vite_rails"`)
}

func TestRenderTree_StripsExtensionAndPrefix(t *testing.T) {
	files, err := RenderTree("frontend/root", Data{AppName: "shop", SourceCodeDir: "app/frontend", PackageManager: "bun"})
	require.NoError(t, err)

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	assert.Equal(t, []string{
		"Procfile.dev",
		"bin/watch",
		"config/vite.json",
		"env.development",
		"package.json",
		"vite.config.ts",
	}, paths)

	for _, f := range files {
		if f.Path == "package.json" {
			assert.Contains(t, f.Content, `"name": "shop"`)
		}
		if f.Path == "env.development" {
			assert.Contains(t, f.Content, "SUN_SWORD_PACKAGE_MANAGER=bun")
		}
	}
}

func TestRenderTree_IncludesUnderscorePartials(t *testing.T) {
	files, err := RenderTree("frontend/components", Data{AppName: "shop"})
	require.NoError(t, err)

	var sidebar string
	for _, f := range files {
		if f.Path == "views/components/layouts/_sidebar.html.erb" {
			sidebar = f.Content
		}
	}
	require.NotEmpty(t, sidebar, "sidebar partial should be embedded")
	assert.Contains(t, sidebar, "                <%# generate_link %>\n")
}

func TestExists(t *testing.T) {
	assert.True(t, Exists("frontend/routes.rb"))
	assert.True(t, Exists("frontend/tests"))
	assert.False(t, Exists("frontend/missing"))
}
