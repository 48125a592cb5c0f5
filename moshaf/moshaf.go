// Package moshaf models a MoshafConfig: the recitation-convention options
// that select among variant patterns inside phonetizer operations (spec
// §3.1, "MoshafConfig"). A MoshafConfig never mutates the engine itself —
// it only routes which regex/replacement variant an Operation picks.
//
// Defaults are code-level constants, in the teacher's idiom (az-lang-nlp's
// const blocks of tunables), overridable from YAML via viper — see
// package config.
package moshaf

// Rewaya identifies a transmission chain (riwaya) of recitation.
type Rewaya int

const (
	Hafs Rewaya = iota
	Warsh
	Qalun
	Douri
)

func (r Rewaya) String() string {
	switch r {
	case Hafs:
		return "hafs"
	case Warsh:
		return "warsh"
	case Qalun:
		return "qalun"
	case Douri:
		return "douri"
	default:
		return "hafs"
	}
}

// Config is the full set of recognized Moshaf options (spec §3.1).
// Default() returns the Hafs-an-Asim defaults; the zero value leaves every
// madd length at 0.
type Config struct {
	Rewaya Rewaya `yaml:"rewaya" mapstructure:"rewaya"`

	MaddMonfaselLen  int `yaml:"madd_monfasel_len" mapstructure:"madd_monfasel_len"`
	MaddMottaselLen  int `yaml:"madd_mottasel_len" mapstructure:"madd_mottasel_len"`
	MaddMottaselWaqf int `yaml:"madd_mottasel_waqf" mapstructure:"madd_mottasel_waqf"`
	MaddAaredLen     int `yaml:"madd_aared_len" mapstructure:"madd_aared_len"`

	SaktIwaja    bool `yaml:"sakt_iwaja" mapstructure:"sakt_iwaja"`
	SaktMarqdena bool `yaml:"sakt_marqdena" mapstructure:"sakt_marqdena"`
	SaktManRaq   bool `yaml:"sakt_man_raq" mapstructure:"sakt_man_raq"`
	SaktBalRan   bool `yaml:"sakt_bal_ran" mapstructure:"sakt_bal_ran"`
	SaktMaleeyah bool `yaml:"sakt_maleeyah" mapstructure:"sakt_maleeyah"`

	BetweenAnfalAndTawba bool `yaml:"between_anfal_and_tawba" mapstructure:"between_anfal_and_tawba"`
	NoonAndYaseen        bool `yaml:"noon_and_yaseen" mapstructure:"noon_and_yaseen"`
	YaaAtaan             bool `yaml:"yaa_ataan" mapstructure:"yaa_ataan"`
	StartWithIsm         bool `yaml:"start_with_ism" mapstructure:"start_with_ism"`
	Yabsut               bool `yaml:"yabsut" mapstructure:"yabsut"`
	Bastah               bool `yaml:"bastah" mapstructure:"bastah"`
	Almusaytirun         bool `yaml:"almusaytirun" mapstructure:"almusaytirun"`
	Bimusaytir           bool `yaml:"bimusaytir" mapstructure:"bimusaytir"`
	TasheelOrMadd        bool `yaml:"tasheel_or_madd" mapstructure:"tasheel_or_madd"`
	YalhathDhalik        bool `yaml:"yalhath_dhalik" mapstructure:"yalhath_dhalik"`
	IrkabMaana           bool `yaml:"irkab_maana" mapstructure:"irkab_maana"`
	NoonTamnna           bool `yaml:"noon_tamnna" mapstructure:"noon_tamnna"`
	HarakatDaaf          bool `yaml:"harakat_daaf" mapstructure:"harakat_daaf"`
	AlifSalasila         bool `yaml:"alif_salasila" mapstructure:"alif_salasila"`
	IdghamNakhluqkum     bool `yaml:"idgham_nakhluqkum" mapstructure:"idgham_nakhluqkum"`

	RaaFirq   bool `yaml:"raa_firq" mapstructure:"raa_firq"`
	RaaAlqitr bool `yaml:"raa_alqitr" mapstructure:"raa_alqitr"`
	RaaMisr   bool `yaml:"raa_misr" mapstructure:"raa_misr"`
	RaaNudhur bool `yaml:"raa_nudhur" mapstructure:"raa_nudhur"`
	RaaYasr   bool `yaml:"raa_yasr" mapstructure:"raa_yasr"`

	MeemAalImran        bool `yaml:"meem_aal_imran" mapstructure:"meem_aal_imran"`
	MeemMokhfah         bool `yaml:"meem_mokhfah" mapstructure:"meem_mokhfah"`
	MaddYaaAlaynAlharfy int  `yaml:"madd_yaa_alayn_alharfy" mapstructure:"madd_yaa_alayn_alharfy"`
}

// Default returns the canonical Hafs-an-Asim-an-Aasim configuration used
// throughout spec.md's worked scenarios (madd_aared_len=4, etc.).
func Default() Config {
	return Config{
		Rewaya:              Hafs,
		MaddMonfaselLen:     4,
		MaddMottaselLen:     4,
		MaddMottaselWaqf:    4,
		MaddAaredLen:        4,
		MaddYaaAlaynAlharfy: 4,
	}
}
