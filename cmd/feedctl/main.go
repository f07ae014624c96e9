// Command feedctl is a terminal client for a Campus Network server.
// It keeps its session in a local state file and works offline: posts
// and likes made while the server is down are queued and replayed with
// the sync subcommand.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"campusnet/internal/client"
	"campusnet/internal/models"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: feedctl [flags] <command> [args]

commands:
  login <email> <password>
  register <username> <email> <password>
  feed [query]
  filter <tous|questions|ressources>
  post <content>
  like <postId>
  comment <postId> <content>
  recs
  sync

flags:`)
	flag.PrintDefaults()
}

func main() {
	server := flag.String("server", "http://localhost:3000", "API base URL")
	statePath := flag.String("state", ".campusnet.json", "session state file")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	session, err := client.Load(*statePath)
	if err != nil {
		log.Fatalf("failed to load session: %v", err)
	}
	c := client.New(*server)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd := args[0]; cmd {
	case "login":
		requireArgs(args, 3)
		if err := c.Login(ctx, session, args[1], args[2]); err != nil {
			log.Fatalf("login failed: %v", err)
		}
		if session.Offline {
			fmt.Println("server unreachable, demo session started")
		}
		fmt.Printf("logged in as %s\n", session.User.Username)

	case "register":
		requireArgs(args, 4)
		if err := c.Register(ctx, session, args[1], args[2], args[3], "", ""); err != nil {
			log.Fatalf("register failed: %v", err)
		}
		fmt.Printf("registered as %s\n", session.User.Username)

	case "feed":
		if err := c.RefreshFeed(ctx, session); err != nil {
			log.Fatalf("feed failed: %v", err)
		}
		posts := session.Posts
		if len(args) > 1 {
			posts = client.Search(posts, args[1])
		}
		printPosts(posts)

	case "filter":
		requireArgs(args, 2)
		if err := c.RefreshFeed(ctx, session); err != nil {
			log.Fatalf("feed failed: %v", err)
		}
		printPosts(client.FilterCategory(session.Posts, args[1]))

	case "post":
		requireArgs(args, 2)
		if err := c.CreatePost(ctx, session, args[1], nil); err != nil {
			log.Fatalf("post failed: %v", err)
		}
		fmt.Println("posted")

	case "like":
		requireArgs(args, 2)
		if err := c.LikePost(ctx, session, parseID(args[1])); err != nil {
			log.Fatalf("like failed: %v", err)
		}
		fmt.Println("liked")

	case "comment":
		requireArgs(args, 3)
		if err := c.AddComment(ctx, session, parseID(args[1]), args[2]); err != nil {
			log.Fatalf("comment failed: %v", err)
		}
		fmt.Println("commented")

	case "recs":
		kind, posts, err := c.Recommendations(ctx, session)
		if err != nil {
			log.Fatalf("recommendations failed: %v", err)
		}
		fmt.Printf("recommandations (%s):\n", kind)
		printPosts(posts)

	case "sync":
		if err := c.Reconcile(ctx, session); err != nil {
			log.Fatalf("sync failed: %v", err)
		}
		fmt.Println("synced")

	default:
		usage()
		os.Exit(2)
	}

	if err := session.Save(*statePath); err != nil {
		log.Fatalf("failed to save session: %v", err)
	}
}

func requireArgs(args []string, n int) {
	if len(args) < n {
		usage()
		os.Exit(2)
	}
}

func parseID(s string) uint {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		log.Fatalf("invalid post id %q", s)
	}
	return uint(id)
}

func printPosts(posts []models.PostView) {
	for _, p := range posts {
		marker := ""
		if len(p.Tags) > 0 {
			marker = fmt.Sprintf(" %v", p.Tags)
		}
		fmt.Printf("#%d %s (%s)%s\n  %s\n  ❤ %d  💬 %d\n",
			p.ID, p.Username, p.University, marker, p.Content, p.Likes, p.Comments)
	}
}
