package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/hookkit/internal/copier"
	"github.com/gorewood/hookkit/internal/git"
	"github.com/gorewood/hookkit/internal/setup"
	"github.com/gorewood/hookkit/internal/stage"
)

// --- find_git_root ---

// FindRootInput is the input for the find_git_root tool.
type FindRootInput struct {
	Dir string `json:"dir" jsonschema:"absolute directory to start searching from"`
}

// FindRootOutput is the output for the find_git_root tool.
type FindRootOutput struct {
	Root           string `json:"root"                       jsonschema:"repository root directory"`
	HooksDir       string `json:"hooks_dir"                  jsonschema:"the .git/hooks directory"`
	HooksPathInUse string `json:"hooks_path_in_use,omitempty" jsonschema:"core.hooksPath if configured; git then ignores .git/hooks"`
}

func handleFindRoot() mcp.ToolHandlerFor[FindRootInput, FindRootOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FindRootInput) (*mcp.CallToolResult, FindRootOutput, error) {
		root, err := git.FindRoot(input.Dir)
		if err != nil {
			return nil, FindRootOutput{}, fmt.Errorf("finding git root: %w", err)
		}
		return nil, FindRootOutput{
			Root:           root,
			HooksDir:       git.HooksDir(root),
			HooksPathInUse: git.HooksPathOverride(ctx, root),
		}, nil
	}
}

// --- hook_status ---

// StatusInput is the input for the hook_status tool.
type StatusInput struct {
	Dir   string   `json:"dir"             jsonschema:"directory inside the repository"`
	Hooks []string `json:"hooks,omitempty" jsonschema:"hook names (default pre-commit)"`
}

// StatusOutput is the output for the hook_status tool.
type StatusOutput struct {
	Root  string             `json:"root"  jsonschema:"repository root directory"`
	Hooks []setup.HookStatus `json:"hooks" jsonschema:"status of each requested hook"`
}

func handleStatus(configDir string) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		hooks, err := setup.ParseHookNames(input.Hooks)
		if err != nil {
			return nil, StatusOutput{}, err
		}
		root, err := git.FindRoot(input.Dir)
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("finding git root: %w", err)
		}
		tmpl, err := setup.LoadTemplate("", configDir)
		if err != nil {
			return nil, StatusOutput{}, err
		}

		out := StatusOutput{Root: root, Hooks: make([]setup.HookStatus, 0, len(hooks))}
		for _, hook := range hooks {
			out.Hooks = append(out.Hooks, setup.CheckHookStatus(git.HooksDir(root), hook, tmpl.Content))
		}
		return nil, out, nil
	}
}

// --- install_hooks ---

// InstallInput is the input for the install_hooks tool.
type InstallInput struct {
	Dir      string   `json:"dir"                jsonschema:"directory inside the repository"`
	Hooks    []string `json:"hooks,omitempty"    jsonschema:"hook names (default pre-commit)"`
	Template string   `json:"template,omitempty" jsonschema:"path to a hook script to install instead of the bundled one"`
}

// InstallOutput is the output for the install_hooks tool.
type InstallOutput struct {
	Template  string                `json:"template"  jsonschema:"template source: bundled, global or project"`
	Installed []setup.InstallResult `json:"installed" jsonschema:"hooks written, with backup flags"`
}

func handleInstall(configDir string) mcp.ToolHandlerFor[InstallInput, InstallOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input InstallInput) (*mcp.CallToolResult, InstallOutput, error) {
		hooks, err := setup.ParseHookNames(input.Hooks)
		if err != nil {
			return nil, InstallOutput{}, err
		}
		tmpl, err := setup.LoadTemplate(input.Template, configDir)
		if err != nil {
			return nil, InstallOutput{}, err
		}

		results, err := setup.InstallHooks(input.Dir, hooks, tmpl.Content)
		out := InstallOutput{Template: tmpl.Source, Installed: results}
		if err != nil {
			return nil, out, fmt.Errorf("installing hooks: %w", err)
		}
		return nil, out, nil
	}
}

// --- copy ---

// CopyInput is the input for the copy tool.
type CopyInput struct {
	Dir       string   `json:"dir"                 jsonschema:"caller directory; source is relative to it"`
	Source    string   `json:"source"              jsonschema:"file or directory to copy"`
	Target    string   `json:"target,omitempty"    jsonschema:"destination relative to the project root (default: same as source)"`
	Overwrite bool     `json:"overwrite,omitempty" jsonschema:"replace existing files"`
	Exclude   []string `json:"exclude,omitempty"   jsonschema:"gitignore-style patterns to skip"`
}

// CopyOutput is the output for the copy tool.
type CopyOutput struct {
	Root   string `json:"root"   jsonschema:"project root the target was checked against"`
	Source string `json:"source" jsonschema:"absolute source path"`
	Target string `json:"target" jsonschema:"absolute target path"`
}

func handleCopy() mcp.ToolHandlerFor[CopyInput, CopyOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CopyInput) (*mcp.CallToolResult, CopyOutput, error) {
		opts := copier.Options{Overwrite: input.Overwrite, Exclude: input.Exclude}
		plan, err := stage.Copy(input.Dir, input.Source, input.Target, opts)
		if err != nil {
			return nil, CopyOutput{}, fmt.Errorf("copying %s: %w", input.Source, err)
		}
		return nil, CopyOutput{Root: plan.Root, Source: plan.Source, Target: plan.Target}, nil
	}
}
