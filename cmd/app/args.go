package app

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func ParseArgs() Args {
	// client config
	pflag.String("config", "./cmd/app/config.yml", "")
	pflag.String("base-url", "", "override the environment-resolved backend URL")

	// identity and targets
	pflag.Uint("user", 0, "acting user id")
	pflag.Uint("keyword", 0, "keyword id")
	pflag.Uint("photo", 0, "photo id")
	pflag.Uint("contest", 0, "contest id")

	// search and paging
	pflag.String("query", "", "search query")
	pflag.String("sort", "latest", "photo search order: latest or likes")
	pflag.Int("limit", 0, "")
	pflag.Int("offset", 0, "")

	// uploads
	pflag.String("file", "", "path of the image to upload")
	pflag.String("location", "", "")
	pflag.String("description", "", "")

	// contests
	pflag.String("title", "", "")
	pflag.Int("points", 0, "contest reward, a positive multiple of 100")
	pflag.String("deadline", "", "RFC3339 contest deadline")
	pflag.String("status", "", "contest status filter")

	// keywords
	pflag.String("period", "", "morning or evening; empty means the local clock decides")

	// stub server
	pflag.String("addr", ":8000", "stub server listen address")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("LOCA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	command := ""
	if rest := pflag.Args(); len(rest) > 0 {
		command = rest[0]
	}

	return Args{
		Command:     command,
		ConfigPath:  viper.GetString("config"),
		BaseURL:     viper.GetString("base-url"),
		UserID:      viper.GetUint("user"),
		KeywordID:   viper.GetUint("keyword"),
		PhotoID:     viper.GetUint("photo"),
		ContestID:   viper.GetUint("contest"),
		Query:       viper.GetString("query"),
		Sort:        viper.GetString("sort"),
		Limit:       viper.GetInt("limit"),
		Offset:      viper.GetInt("offset"),
		File:        viper.GetString("file"),
		Location:    viper.GetString("location"),
		Description: viper.GetString("description"),
		Title:       viper.GetString("title"),
		Points:      viper.GetInt("points"),
		Deadline:    viper.GetString("deadline"),
		Status:      viper.GetString("status"),
		Period:      viper.GetString("period"),
		Addr:        viper.GetString("addr"),
	}
}

type Args struct {
	Command     string
	ConfigPath  string
	BaseURL     string
	UserID      uint
	KeywordID   uint
	PhotoID     uint
	ContestID   uint
	Query       string
	Sort        string
	Limit       int
	Offset      int
	File        string
	Location    string
	Description string
	Title       string
	Points      int
	Deadline    string
	Status      string
	Period      string
	Addr        string
}
