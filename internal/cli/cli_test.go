package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bob/internal/scaffold"
)

// setupProject creates a project directory with a bob.yaml and enters it.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bob.yaml"), []byte("history_path: .bob/history.db\n"), 0644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func readProjectFile(t *testing.T, dir, path string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(path)))
	require.NoError(t, err)
	return string(data)
}

func TestModelCmd_GeneratesModel(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "model", "user", "has_many:posts", "age:min:18", "-t")
	require.NoError(t, err)
	assert.Contains(t, out, "[ + ] Model User")

	content := readProjectFile(t, dir, "application/models/user.php")
	assert.Contains(t, content, "class User extends Eloquent")
	assert.Contains(t, content, scaffold.TimestampsSnippet)
	assert.Contains(t, content, "return $this->has_many('Post');")
	assert.Contains(t, content, "'age' => 'min:18',")
	assert.NotContains(t, content, "#")
}

func TestModelCmd_MissingName(t *testing.T) {
	dir := setupProject(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no argument", []string{"model"}},
		{"empty name", []string{"model", ""}},
		{"bundle only", []string{"model", "shop::", "has_many:posts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, scaffold.ErrMissingModelName)

			for _, path := range []string{"application", "bundles", ".bob"} {
				_, statErr := os.Stat(filepath.Join(dir, path))
				assert.True(t, os.IsNotExist(statErr), "%s should not exist", path)
			}
		})
	}
}

func TestModelCmd_SingularRelations(t *testing.T) {
	dir := setupProject(t)

	_, err := execute(t, "model", "user", "ho:address", "bt:status")
	require.NoError(t, err)

	content := readProjectFile(t, dir, "application/models/user.php")
	assert.Contains(t, content, "return $this->has_one('Address');")
	assert.Contains(t, content, "return $this->belongs_to('Status');")
}

func TestModelCmd_Bundle(t *testing.T) {
	dir := setupProject(t)

	_, err := execute(t, "model", "shop::admin.product", "bt:category")
	require.NoError(t, err)

	content := readProjectFile(t, dir, "bundles/shop/models/admin/product.php")
	assert.Contains(t, content, "class Shop_Admin_Product extends Eloquent")
	assert.Contains(t, content, "return $this->belongs_to('Category');")
}

func TestModelCmd_ExistingFile(t *testing.T) {
	dir := setupProject(t)
	path := filepath.Join(dir, "application", "models", "user.php")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("hand written"), 0644))

	out, err := execute(t, "model", "user")
	require.NoError(t, err)
	assert.Contains(t, out, "use --force")
	assert.Equal(t, "hand written", readProjectFile(t, dir, "application/models/user.php"))

	_, err = execute(t, "model", "user", "--force")
	require.NoError(t, err)
	assert.Contains(t, readProjectFile(t, dir, "application/models/user.php"), "class User")
}

func TestModelCmd_Pretend(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "model", "user", "--pretend")
	require.NoError(t, err)
	assert.Contains(t, out, "Model User")

	_, statErr := os.Stat(filepath.Join(dir, "application"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestModelCmd_TemplateOverride(t *testing.T) {
	dir := setupProject(t)
	tplDir := filepath.Join(dir, "templates", "model")
	require.NoError(t, os.MkdirAll(tplDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tplDir, "model.tpl"), []byte("custom #CLASS# #LOWER#\n"), 0644))

	_, err := execute(t, "model", "blog_post")
	require.NoError(t, err)

	assert.Equal(t, "custom Blog_Post blog_post\n", readProjectFile(t, dir, "application/models/blog_post.php"))
}

func TestModelCmd_TimestampsFromConfig(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bob.yaml"), []byte("t: true\nhistory: false\n"), 0644))

	_, err := execute(t, "model", "user")
	require.NoError(t, err)

	assert.Contains(t, readProjectFile(t, dir, "application/models/user.php"), scaffold.TimestampsSnippet)
	_, statErr := os.Stat(filepath.Join(dir, ".bob"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestHistoryCmd(t *testing.T) {
	setupProject(t)

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No generations recorded.")

	_, err = execute(t, "model", "user")
	require.NoError(t, err)
	_, err = execute(t, "model", "user")
	require.NoError(t, err)

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "application/models/user.php")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "skipped")
}

func TestHistoryCmd_Disabled(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bob.yaml"), []byte("history: false\n"), 0644))

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Generation history is disabled.")

	_, statErr := os.Stat(filepath.Join(dir, ".bob"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestTemplatesCmd(t *testing.T) {
	dir := setupProject(t)
	tplDir := filepath.Join(dir, "templates", "model")
	require.NoError(t, os.MkdirAll(tplDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tplDir, "rule.tpl"), []byte("#FIELD#"), 0644))

	out, err := execute(t, "templates")
	require.NoError(t, err)

	assert.Contains(t, out, "model/model.tpl")
	assert.Contains(t, out, "model/rule.tpl")
	assert.Contains(t, out, "override")
	assert.Contains(t, out, "embedded")
}
