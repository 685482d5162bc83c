// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

func idFlag(usage string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:     "id",
		Usage:    usage,
		Required: true,
	}
}

// setupCommand creates local files: config and the sqlite database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create local config and database",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a starter config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Destination path",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Create the local database and run migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "rollback",
						Usage: "Roll back the latest migration instead",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles login, registration and session inspection.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authentication and session management",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
					},
					&cli.StringFlag{
						Name:  "role",
						Usage: "Account role (admin, coach, adjoint, joueur, parent)",
						Value: "coach",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored token",
				Action: r.AuthLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Print the current user",
				Flags:  outputFlags(),
				Action: r.AuthWhoami,
			},
			{
				Name:   "status",
				Usage:  "Print backend and session status",
				Action: r.AuthStatus,
			},
			{
				Name:  "forgot-password",
				Usage: "Request a password reset email",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
					},
				},
				Action: r.AuthForgotPassword,
			},
			{
				Name:  "reset-password",
				Usage: "Set a new password from a reset token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "token",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
					},
				},
				Action: r.AuthResetPassword,
			},
		},
	}
}

func athleteEditFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "nom"},
		&cli.StringFlag{Name: "prenom"},
		&cli.StringFlag{Name: "groupe", Aliases: []string{"g"}},
		&cli.StringFlag{Name: "date-naissance", Usage: "YYYY-MM-DD"},
		&cli.StringFlag{Name: "sexe"},
		&cli.StringFlag{Name: "poste"},
		&cli.IntFlag{Name: "taille", Usage: "Height in cm"},
		&cli.IntFlag{Name: "poids", Usage: "Weight in kg"},
		&cli.StringFlag{Name: "licence"},
		&cli.StringFlag{Name: "telephone"},
		&cli.StringFlag{Name: "email"},
		&cli.StringFlag{Name: "adresse"},
		&cli.BoolFlag{Name: "blesse", Usage: "Mark the athlete as injured"},
	}
}

// athleteCommand handles roster operations.
func athleteCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "athlete",
		Aliases: []string{"ath"},
		Usage:   "Roster management",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List athletes",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "groupe",
						Aliases: []string{"g"},
						Usage:   "Filter by group (U13, U15, U17, Seniors)",
					},
					&cli.StringFlag{
						Name:  "search",
						Usage: "Filter by name",
					},
					&cli.BoolFlag{
						Name:  "blesse",
						Usage: "Filter by injury status",
					},
					&cli.BoolFlag{
						Name:  "cached",
						Usage: "Read the local roster cache instead of the backend",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
				}, outputFlags()...),
				Action: r.AthleteList,
			},
			{
				Name:   "show",
				Usage:  "Show one athlete",
				Flags:  []cli.Flag{idFlag("Athlete ID")},
				Action: r.AthleteShow,
			},
			{
				Name:   "create",
				Usage:  "Register a new athlete",
				Flags:  athleteEditFlags(),
				Action: r.AthleteCreate,
			},
			{
				Name:   "update",
				Usage:  "Update an athlete",
				Flags:  append([]cli.Flag{idFlag("Athlete ID")}, athleteEditFlags()...),
				Action: r.AthleteUpdate,
			},
			{
				Name:   "delete",
				Usage:  "Remove an athlete",
				Flags:  []cli.Flag{idFlag("Athlete ID")},
				Action: r.AthleteDelete,
			},
			{
				Name:  "photo",
				Usage: "Upload a profile photo",
				Flags: []cli.Flag{
					idFlag("Athlete ID"),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the photo",
						Required: true,
					},
				},
				Action: r.AthletePhoto,
			},
		},
	}
}

// attendanceCommand handles attendance sheets.
func attendanceCommand(r *Runner) *cli.Command {
	planningFlag := &cli.IntFlag{
		Name:     "planning",
		Aliases:  []string{"p"},
		Usage:    "Planning event ID",
		Required: true,
	}

	return &cli.Command{
		Name:    "attendance",
		Aliases: []string{"att"},
		Usage:   "Attendance sheets and statistics",
		Commands: []*cli.Command{
			{
				Name:  "sheet",
				Usage: "Print the attendance sheet for an event",
				Flags: append([]cli.Flag{
					planningFlag,
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
				}, outputFlags()...),
				Action: r.AttendanceSheet,
			},
			{
				Name:  "save",
				Usage: "Mark and save the attendance sheet for an event",
				Flags: []cli.Flag{
					planningFlag,
					&cli.BoolFlag{
						Name:  "all-present",
						Usage: "Mark every roster athlete present first",
					},
					&cli.StringSliceFlag{
						Name:  "set",
						Usage: "Override one athlete: ID=STATUS (present, absent, retard, excuse)",
					},
					&cli.StringSliceFlag{
						Name:  "note",
						Usage: "Attach a note: ID=TEXT",
					},
				},
				Action: r.AttendanceSave,
			},
			{
				Name:  "stats",
				Usage: "Print attendance statistics",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "athlete",
						Usage: "Limit to one athlete",
					},
					&cli.StringFlag{
						Name:    "groupe",
						Aliases: []string{"g"},
						Usage:   "Limit to one group",
					},
					&cli.StringFlag{
						Name:  "from",
						Usage: "Start date (YYYY-MM-DD)",
					},
					&cli.StringFlag{
						Name:  "to",
						Usage: "End date (YYYY-MM-DD)",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
				}, outputFlags()...),
				Action: r.AttendanceStats,
			},
			{
				Name:   "ui",
				Usage:  "Open the interactive attendance sheet",
				Flags:  []cli.Flag{planningFlag},
				Action: r.AttendanceUI,
			},
		},
	}
}

func planningEditFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "titre"},
		&cli.StringFlag{Name: "theme"},
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD"},
		&cli.StringFlag{Name: "heure", Usage: "HH:MM"},
		&cli.IntFlag{Name: "duree", Usage: "Duration in minutes"},
		&cli.StringFlag{Name: "lieu"},
		&cli.StringFlag{Name: "type", Usage: "Entraînement, Match or Réunion"},
		&cli.StringFlag{Name: "groupe", Aliases: []string{"g"}},
		&cli.IntFlag{Name: "session", Usage: "Session template ID to link"},
	}
}

// planningCommand handles the calendar.
func planningCommand(r *Runner) *cli.Command {
	athleteFlag := &cli.IntFlag{
		Name:     "athlete",
		Usage:    "Athlete ID",
		Required: true,
	}

	return &cli.Command{
		Name:    "planning",
		Aliases: []string{"plan"},
		Usage:   "Calendar events",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List events",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "groupe", Aliases: []string{"g"}},
					&cli.StringFlag{Name: "type"},
					&cli.StringFlag{Name: "from", Usage: "Start date (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "to", Usage: "End date (YYYY-MM-DD)"},
				}, outputFlags()...),
				Action: r.PlanningList,
			},
			{
				Name:   "show",
				Usage:  "Show one event",
				Flags:  []cli.Flag{idFlag("Planning event ID")},
				Action: r.PlanningShow,
			},
			{
				Name:   "create",
				Usage:  "Create an event",
				Flags:  planningEditFlags(),
				Action: r.PlanningCreate,
			},
			{
				Name:   "update",
				Usage:  "Update an event",
				Flags:  append([]cli.Flag{idFlag("Planning event ID")}, planningEditFlags()...),
				Action: r.PlanningUpdate,
			},
			{
				Name:   "delete",
				Usage:  "Remove an event",
				Flags:  []cli.Flag{idFlag("Planning event ID")},
				Action: r.PlanningDelete,
			},
			{
				Name:   "assign",
				Usage:  "Add an athlete to an event",
				Flags:  []cli.Flag{idFlag("Planning event ID"), athleteFlag},
				Action: r.PlanningAssign,
			},
			{
				Name:   "unassign",
				Usage:  "Remove an athlete from an event",
				Flags:  []cli.Flag{idFlag("Planning event ID"), athleteFlag},
				Action: r.PlanningUnassign,
			},
		},
	}
}

func sessionEditFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "titre"},
		&cli.StringFlag{Name: "objectif"},
		&cli.IntFlag{Name: "duree", Usage: "Total duration in minutes"},
		&cli.StringFlag{Name: "echauffement", Usage: "Warm-up content"},
		&cli.StringFlag{Name: "corps", Usage: "Main content"},
		&cli.StringFlag{Name: "retour", Usage: "Cool-down content"},
		&cli.IntSliceFlag{Name: "exercise", Usage: "Exercise ID to include (repeatable)"},
	}
}

// sessionCommand handles reusable session templates.
func sessionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "session",
		Aliases: []string{"sess"},
		Usage:   "Training session templates",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List session templates",
				Flags:  outputFlags(),
				Action: r.SessionList,
			},
			{
				Name:   "show",
				Usage:  "Show one template",
				Flags:  []cli.Flag{idFlag("Session template ID")},
				Action: r.SessionShow,
			},
			{
				Name:   "create",
				Usage:  "Create a template",
				Flags:  sessionEditFlags(),
				Action: r.SessionCreate,
			},
			{
				Name:   "update",
				Usage:  "Update a template",
				Flags:  append([]cli.Flag{idFlag("Session template ID")}, sessionEditFlags()...),
				Action: r.SessionUpdate,
			},
			{
				Name:   "delete",
				Usage:  "Remove a template",
				Flags:  []cli.Flag{idFlag("Session template ID")},
				Action: r.SessionDelete,
			},
			{
				Name:   "export-pdf",
				Usage:  "Print the PDF export URL for a template",
				Flags:  []cli.Flag{idFlag("Session template ID")},
				Action: r.SessionExport,
			},
		},
	}
}

func exerciseEditFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "nom"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "categorie"},
		&cli.StringFlag{Name: "sous-categorie"},
		&cli.IntFlag{Name: "duree", Usage: "Duration in minutes"},
		&cli.IntFlag{Name: "joueurs-min"},
		&cli.IntFlag{Name: "joueurs-max"},
		&cli.StringFlag{Name: "materiel"},
	}
}

// exerciseCommand handles the drill library.
func exerciseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "exercise",
		Aliases: []string{"ex"},
		Usage:   "Exercise library",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List exercises",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "categorie"},
					&cli.StringFlag{Name: "sous-categorie"},
					&cli.StringFlag{Name: "search"},
				}, outputFlags()...),
				Action: r.ExerciseList,
			},
			{
				Name:   "show",
				Usage:  "Show one exercise",
				Flags:  []cli.Flag{idFlag("Exercise ID")},
				Action: r.ExerciseShow,
			},
			{
				Name:   "create",
				Usage:  "Add an exercise",
				Flags:  exerciseEditFlags(),
				Action: r.ExerciseCreate,
			},
			{
				Name:   "update",
				Usage:  "Update an exercise",
				Flags:  append([]cli.Flag{idFlag("Exercise ID")}, exerciseEditFlags()...),
				Action: r.ExerciseUpdate,
			},
			{
				Name:   "delete",
				Usage:  "Remove an exercise",
				Flags:  []cli.Flag{idFlag("Exercise ID")},
				Action: r.ExerciseDelete,
			},
			{
				Name:  "video",
				Usage: "Attach a demonstration video",
				Flags: []cli.Flag{
					idFlag("Exercise ID"),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the video",
						Required: true,
					},
				},
				Action: r.ExerciseVideo,
			},
		},
	}
}

// medicalCommand handles athlete medical files.
func medicalCommand(r *Runner) *cli.Command {
	athleteFlag := &cli.IntFlag{
		Name:     "athlete",
		Usage:    "Athlete ID",
		Required: true,
	}

	return &cli.Command{
		Name:    "medical",
		Aliases: []string{"med"},
		Usage:   "Athlete medical files",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show an athlete's medical file",
				Flags:  []cli.Flag{athleteFlag},
				Action: r.MedicalShow,
			},
			{
				Name:  "update",
				Usage: "Update an athlete's medical file",
				Flags: []cli.Flag{
					athleteFlag,
					&cli.StringFlag{Name: "groupe-sanguin"},
					&cli.StringFlag{Name: "allergies"},
					&cli.StringFlag{Name: "traitements"},
					&cli.StringFlag{Name: "antecedents"},
					&cli.BoolFlag{Name: "apte", Usage: "Fit to play"},
					&cli.StringFlag{Name: "notes"},
					&cli.StringFlag{Name: "blessures"},
				},
				Action: r.MedicalUpdate,
			},
			{
				Name:  "certificate",
				Usage: "Upload a medical certificate",
				Flags: []cli.Flag{
					athleteFlag,
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the certificate",
						Required: true,
					},
				},
				Action: r.MedicalCertificate,
			},
		},
	}
}

// videoCommand handles uploaded videos.
func videoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "video",
		Usage: "Uploaded videos",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List videos",
				Flags:  outputFlags(),
				Action: r.VideoList,
			},
			{
				Name:   "show",
				Usage:  "Show one video",
				Flags:  []cli.Flag{idFlag("Video ID")},
				Action: r.VideoShow,
			},
			{
				Name:   "delete",
				Usage:  "Remove a video",
				Flags:  []cli.Flag{idFlag("Video ID")},
				Action: r.VideoDelete,
			},
		},
	}
}

// dashboardCommand prints the home-screen summary.
func dashboardCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"dash"},
		Usage:   "Club summary",
		Flags:   outputFlags(),
		Action:  r.DashboardShow,
	}
}

// adminCommand handles user administration. Admin role required.
func adminCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "User administration (admin only)",
		Commands: []*cli.Command{
			{
				Name:  "users",
				Usage: "List users",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "role"},
					&cli.StringFlag{Name: "search"},
				}, outputFlags()...),
				Action: r.AdminUserList,
			},
			{
				Name:   "user",
				Usage:  "Show one user",
				Flags:  []cli.Flag{idFlag("User ID")},
				Action: r.AdminUserShow,
			},
			{
				Name:  "update-user",
				Usage: "Change a user's name or role",
				Flags: []cli.Flag{
					idFlag("User ID"),
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "role"},
				},
				Action: r.AdminUserUpdate,
			},
			{
				Name:   "delete-user",
				Usage:  "Remove a user account",
				Flags:  []cli.Flag{idFlag("User ID")},
				Action: r.AdminUserDelete,
			},
		},
	}
}
