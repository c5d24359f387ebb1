package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/connecthub/connecthub-backend/common"
	"github.com/connecthub/connecthub-backend/db"
	"github.com/spf13/cobra"
)

var (
	listJSON      bool
	filterAuthor  string
	filterHashtag string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List posts in the feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		_, dbs, store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer dbs.Close()

		var ps []db.Post
		switch {
		case filterAuthor != "":
			ps, err = store.PostsByAuthor(ctx, filterAuthor)
		case filterHashtag != "":
			ps, err = store.PostsByHashtag(ctx, filterHashtag)
		default:
			ps, err = store.GetPosts(ctx)
		}
		if err != nil {
			return err
		}

		if listJSON {
			return printJSON(cmd.OutOrStdout(), ps)
		}
		printPosts(cmd.OutOrStdout(), ps, time.Now())
		return nil
	},
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List job postings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		_, dbs, store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer dbs.Close()

		jobs, err := store.GetJobPostings(ctx)
		if err != nil {
			return err
		}

		if listJSON {
			return printJSON(cmd.OutOrStdout(), jobs)
		}
		printJobs(cmd.OutOrStdout(), jobs, time.Now())
		return nil
	},
}

func init() {
	postsCmd.Flags().StringVar(&filterAuthor, "author", "", "Only posts by this email")
	postsCmd.Flags().StringVar(&filterHashtag, "hashtag", "", "Only posts with this hashtag")
	for _, c := range []*cobra.Command{postsCmd, jobsCmd} {
		c.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of text")
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPosts(w io.Writer, ps []db.Post, now time.Time) {
	for _, p := range ps {
		fmt.Fprintf(w, "[%s] %s (%s, %s)\n", p.ID, p.Author, p.AuthorEmail, common.TimeAgo(p.Timestamp, now))
		fmt.Fprintf(w, "  %s\n", p.Content)
		if len(p.Hashtags) > 0 {
			fmt.Fprintf(w, "  #%s\n", strings.Join(p.Hashtags, " #"))
		}
		fmt.Fprintf(w, "  %d likes, %d comments\n", len(p.Likes), len(p.Comments))
	}
}

func printJobs(w io.Writer, jobs []db.JobPosting, now time.Time) {
	for _, j := range jobs {
		fmt.Fprintf(w, "[%s] %s at %s, %s (%s)\n", j.ID, j.Position, j.Company, j.Location, common.PostedLabel(j.Posted, now))
		if j.Salary != nil {
			fmt.Fprintf(w, "  %s\n", *j.Salary)
		}
		fmt.Fprintf(w, "  %d applicants\n", j.Applicants)
	}
}
