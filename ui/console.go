// Package ui is the thin console I/O wrapper around the client core.
// It renders what the dispatcher tells it to and never touches state.
package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"peerchat/domain"
)

type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) ShowAuthPrompt() {
	color.Fprintf(c.out, "<cyan>Log in with: /login <username> <password></>\n")
}

func (c *Console) ShowInfo(message string) {
	color.Fprintf(c.out, "<gray>%s</>\n", message)
}

func (c *Console) ShowError(message string) {
	color.Fprintf(c.out, "<red>%s</>\n", message)
}

// ShowPeers draws the directory: presence dot, unseen badge, focus marker.
func (c *Console) ShowPeers(peers []domain.PeerView) {
	if len(peers) == 0 {
		c.ShowInfo("Nobody else is around yet.")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"", "Peer", "Status", "Unseen"})
	for _, peer := range peers {
		marker := ""
		if peer.Focused {
			marker = ">"
		}
		status := color.Red.Render("offline")
		if peer.Online {
			status = color.Green.Render("online")
		}
		unseen := ""
		if peer.Unseen > 0 {
			unseen = color.Yellow.Render(strconv.Itoa(peer.Unseen))
		}
		table.Append([]string{marker, peer.Username, status, unseen})
	}
	table.Render()
}

func (c *Console) ShowHistory(peer string, messages []domain.Message) {
	color.Fprintf(c.out, "<cyan>--- Chat with %s ---</>\n", peer)
	for _, msg := range messages {
		c.printMessage(msg, false)
	}
}

func (c *Console) AppendMessage(message domain.Message, own bool) {
	c.printMessage(message, own)
}

func (c *Console) printMessage(msg domain.Message, own bool) {
	stamp := ""
	if !msg.Timestamp.IsZero() {
		stamp = msg.Timestamp.Format(time.TimeOnly) + " "
	}
	line := fmt.Sprintf("%s%s: %s", stamp, msg.From, msg.Text)
	if own {
		color.Fprintf(c.out, "<blue>%s</>\n", line)
	} else {
		fmt.Fprintln(c.out, line)
	}
}

// Notifier is the console stand-in for the platform notification service.
// The permission outcome is decided by configuration since a terminal has no
// real permission prompt; the channel still enforces the ask-once rule.
type Notifier struct {
	out   io.Writer
	grant domain.Permission
}

func NewNotifier(out io.Writer, grant domain.Permission) *Notifier {
	return &Notifier{out: out, grant: grant}
}

func (n *Notifier) RequestPermission(context.Context) (domain.Permission, error) {
	return n.grant, nil
}

func (n *Notifier) Show(title, body string) error {
	color.Fprintf(n.out, "<yellow>[%s] %s</>\n", title, body)
	return nil
}

// Beep rings the terminal bell.
func (n *Notifier) Beep() {
	fmt.Fprint(n.out, "\a")
}

// Windows satisfies the window-manager contract for a terminal client:
// the terminal is the only window and it is already in front.
type Windows struct{}

func (Windows) FocusExisting() bool { return true }
func (Windows) OpenNew() error      { return nil }
