package models

// Role identifies which command set a user may exercise.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCoach   Role = "coach"
	RoleAdjoint Role = "adjoint"
	RoleJoueur  Role = "joueur"
	RoleParent  Role = "parent"
)

// Roles lists every role the backend recognizes, in registration-form order.
var Roles = []Role{RoleAdmin, RoleCoach, RoleAdjoint, RoleJoueur, RoleParent}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User is the session identity returned by the auth endpoints.
// Role is immutable for the session lifetime.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Athlete represents a club athlete.
type Athlete struct {
	ID            int    `json:"id"`
	Nom           string `json:"nom"`
	Prenom        string `json:"prenom"`
	DateNaissance string `json:"date_naissance,omitempty"`
	Sexe          string `json:"sexe,omitempty"`
	Groupe        string `json:"groupe"`
	Poste         string `json:"poste,omitempty"`
	Taille        int    `json:"taille,omitempty"`
	Poids         int    `json:"poids,omitempty"`
	NumeroLicence string `json:"numero_licence,omitempty"`
	Telephone     string `json:"telephone,omitempty"`
	Email         string `json:"email,omitempty"`
	Adresse       string `json:"adresse,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`
	Blesse        bool   `json:"blesse"`
}

// FullName returns "Prenom Nom" for display.
func (a Athlete) FullName() string {
	return a.Prenom + " " + a.Nom
}

// AttendanceStatus is the per-athlete attendance state for a planning event.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusRetard  AttendanceStatus = "retard"
	StatusExcuse  AttendanceStatus = "excuse"
)

// Valid reports whether s is one of the recognized attendance statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusRetard, StatusExcuse:
		return true
	}
	return false
}

// AttendanceRecord links an athlete's status to a planning event.
// The backend upserts on the (planning, athlete) pair: at most one record exists per pair.
type AttendanceRecord struct {
	PlanningID int              `json:"planning_id"`
	AthleteID  int              `json:"athlete_id"`
	Status     AttendanceStatus `json:"status"`
	Notes      string           `json:"notes,omitempty"`
}

// AttendanceStats is the server-computed attendance summary.
// The attendance-rate formula lives on the backend; it is only consumed here.
type AttendanceStats struct {
	AthleteID int     `json:"athlete_id,omitempty"`
	Groupe    string  `json:"groupe,omitempty"`
	Present   int     `json:"present"`
	Absent    int     `json:"absent"`
	Retard    int     `json:"retard"`
	Excuse    int     `json:"excuse"`
	Total     int     `json:"total"`
	Rate      float64 `json:"taux_presence"`
}

// EventType enumerates the kinds of planning events.
type EventType string

const (
	EventEntrainement EventType = "Entraînement"
	EventMatch        EventType = "Match"
	EventReunion      EventType = "Réunion"
)

// PlanningEvent is a scheduled calendar entry, distinct from a reusable
// SessionTemplate. SessionID optionally links the event to a template.
type PlanningEvent struct {
	ID               int       `json:"id"`
	Titre            string    `json:"titre"`
	Theme            string    `json:"theme,omitempty"`
	Date             string    `json:"date"`
	Heure            string    `json:"heure"`
	Duree            int       `json:"duree"`
	Lieu             string    `json:"lieu,omitempty"`
	Type             EventType `json:"type"`
	Groupe           string    `json:"groupe"`
	SessionID        *int      `json:"session_id,omitempty"`
	AthletesAssignes []int     `json:"athletes_assignes,omitempty"`
}

// SessionTemplate is reusable training content that can back one or more
// planning events.
type SessionTemplate struct {
	ID            int    `json:"id"`
	Titre         string `json:"titre"`
	Objectif      string `json:"objectif,omitempty"`
	DureeTotale   int    `json:"duree_totale,omitempty"`
	Echauffement  string `json:"echauffement,omitempty"`
	CorpsSeance   string `json:"corps_seance,omitempty"`
	RetourAuCalme string `json:"retour_au_calme,omitempty"`
	Exercises     []int  `json:"exercises,omitempty"`
}

// Exercise is a drill from the exercise library.
type Exercise struct {
	ID            int    `json:"id"`
	Nom           string `json:"nom"`
	Description   string `json:"description,omitempty"`
	Categorie     string `json:"categorie,omitempty"`
	SousCategorie string `json:"sous_categorie,omitempty"`
	Duree         int    `json:"duree,omitempty"`
	JoueursMin    int    `json:"joueurs_min,omitempty"`
	JoueursMax    int    `json:"joueurs_max,omitempty"`
	Materiel      string `json:"materiel,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
}

// MedicalRecord holds an athlete's medical file.
type MedicalRecord struct {
	AthleteID         int    `json:"athlete_id"`
	GroupeSanguin     string `json:"groupe_sanguin,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	TraitementsEnCours string `json:"traitements_en_cours,omitempty"`
	Antecedents       string `json:"antecedents,omitempty"`
	AptitudeSportive  bool   `json:"aptitude_sportive"`
	NotesCoach        string `json:"notes_coach,omitempty"`
	CertificatDate    string `json:"certificat_date,omitempty"`
	CertificatURL     string `json:"certificat_url,omitempty"`
	BlessuresCours    string `json:"blessures_cours,omitempty"`
}

// Video is an uploaded exercise or match video.
type Video struct {
	ID          int    `json:"id"`
	Titre       string `json:"titre"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	ExerciseID  *int   `json:"exercise_id,omitempty"`
}

// DashboardSummary is the server-computed home screen aggregate.
type DashboardSummary struct {
	TotalAthletes    int               `json:"total_athletes"`
	AthletesBlesses  int               `json:"athletes_blesses"`
	SeancesSemaine   int               `json:"seances_semaine"`
	ProchainsEvents  []PlanningEvent   `json:"prochains_events,omitempty"`
	StatsParGroupe   []AttendanceStats `json:"stats_par_groupe,omitempty"`
}
