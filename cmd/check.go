package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/git"
	"github.com/layervue/create-layervue/icon"
	"github.com/layervue/create-layervue/key"
	"github.com/layervue/create-layervue/style"
	"github.com/spf13/viper"
)

// CheckGit exits with an install hint when the configured git binary is missing.
// It returns the resolved binary path.
func CheckGit() string {
	binary := viper.GetString(key.GitBinary)
	path, err := git.LookPath(binary)
	if err != nil {
		fmt.Println(missingGit(binary))
		os.Exit(1)
	}
	return path
}

func missingGit(binary string) string {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install git"
	case constant.Linux:
		installCmd = "sudo apt install git"
	case constant.Windows:
		installCmd = "winget install --id Git.Git"
	}

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The git executable '%s' was not found in your PATH.", binary))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	return style.Box(style.HiRed, lipgloss.JoinVertical(lipgloss.Left,
		title,
		"\n",
		body,
		suggestion,
	))
}
