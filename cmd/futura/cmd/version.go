package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the futura CLI version and build time.",
		Usage: "futura version",
		Run: func([]string) error {
			printVersion()
			return nil
		},
	})
}
