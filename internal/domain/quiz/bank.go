package quiz

type Category string

const (
	CategoryBehavior  Category = "comportamiento"
	CategoryFirstAid  Category = "primeros_auxilios"
	CategoryEmergency Category = "emergencias"
	CategorySafety    Category = "seguridad"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryBehavior, CategorySafety, CategoryFirstAid, CategoryEmergency}

func (c Category) String() string {
	return string(c)
}

// IsCritical reports whether answers in this category count towards the critical gate.
func (c Category) IsCritical() bool {
	return c == CategoryFirstAid || c == CategoryEmergency
}

func (c Category) Weight() int {
	if c.IsCritical() {
		return 2
	}
	return 1
}

const OptionsPerQuestion = 4

type Question struct {
	Text     string
	Options  [OptionsPerQuestion]string
	Correct  int
	Category Category
}

func (q Question) Weight() int {
	return q.Category.Weight()
}

// Bank returns a copy of the walker-applicant question bank in presentation order.
func Bank() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// MaxScores returns the best achievable total and critical scores for the bank.
func MaxScores() (total, critical int) {
	for _, q := range bank {
		total += q.Weight()
		if q.Category.IsCritical() {
			critical += q.Weight()
		}
	}
	return total, critical
}

var bank = []Question{
	{
		Text: "Un perro empieza a tirar fuerte de la correa al ver a otro perro. ¿Qué haces?",
		Options: [OptionsPerQuestion]string{
			"Tiro de la correa con fuerza hacia atrás",
			"Me detengo, mantengo la calma y redirijo su atención",
			"Suelto la correa para que se calme solo",
			"Le grito para que se detenga",
		},
		Correct:  1,
		Category: CategoryBehavior,
	},
	{
		Text: "¿Cuál es la señal más clara de que un perro está estresado?",
		Options: [OptionsPerQuestion]string{
			"Mueve la cola en círculos",
			"Se echa panza arriba",
			"Jadeo excesivo, orejas hacia atrás y lamido de labios",
			"Ladra una vez al saludar",
		},
		Correct:  2,
		Category: CategoryBehavior,
	},
	{
		Text: "Vas a pasear a varios perros a la vez. ¿Qué debes verificar antes de salir?",
		Options: [OptionsPerQuestion]string{
			"Que todos sean de la misma raza",
			"Que ninguno haya comido en el día",
			"Que todos sean del mismo dueño",
			"Que el estado de collares y correas sea bueno y que se lleven bien entre ellos",
		},
		Correct:  3,
		Category: CategorySafety,
	},
	{
		Text: "Un perro se corta la pata con un vidrio durante el paseo. ¿Qué haces primero?",
		Options: [OptionsPerQuestion]string{
			"Presiono la herida con una gasa o tela limpia para detener el sangrado",
			"Le pongo alcohol directamente en la herida",
			"Sigo el paseo y aviso al dueño al final",
			"Lo dejo que se lama la herida",
		},
		Correct:  0,
		Category: CategoryFirstAid,
	},
	{
		Text: "¿Cómo debes acercarte a un perro que no conoces?",
		Options: [OptionsPerQuestion]string{
			"De frente y mirándolo fijo a los ojos",
			"De lado, con calma y dejando que me huela primero",
			"Corriendo para mostrar entusiasmo",
			"Tocándole la cabeza de inmediato",
		},
		Correct:  1,
		Category: CategoryBehavior,
	},
	{
		Text: "Hace mucho calor al mediodía. ¿Cuál es la mejor decisión?",
		Options: [OptionsPerQuestion]string{
			"Pasear igual por el asfalto, es solo un rato",
			"Correr para terminar más rápido",
			"Pasear temprano o por sombra, con agua y pausas",
			"Cancelar el paseo sin avisar",
		},
		Correct:  2,
		Category: CategorySafety,
	},
	{
		Text: "Un perro se muestra agresivo con otro perro en el parque. ¿Qué haces?",
		Options: [OptionsPerQuestion]string{
			"Lo castigo físicamente",
			"Lo dejo resolver el conflicto solo",
			"Lo suelto para que se aleje",
			"Aumento la distancia con calma y evito el contacto",
		},
		Correct:  3,
		Category: CategoryBehavior,
	},
	{
		Text: "El perro se escapa de la correa cerca de una avenida. ¿Cuál es la respuesta correcta?",
		Options: [OptionsPerQuestion]string{
			"Lo llamo con calma, me agacho y evito perseguirlo hacia la calle",
			"Corro detrás de él gritando",
			"Espero a que regrese solo a la casa",
			"Le lanzo la correa para asustarlo",
		},
		Correct:  0,
		Category: CategoryEmergency,
	},
	{
		Text: "¿Qué equipo es indispensable en cada paseo?",
		Options: [OptionsPerQuestion]string{
			"Juguetes chillones",
			"Correa en buen estado, bolsas y agua",
			"Un bozal para todos los perros",
			"Premios ilimitados",
		},
		Correct:  1,
		Category: CategorySafety,
	},
	{
		Text: "¿Cómo refuerzas que un perro camine sin tirar?",
		Options: [OptionsPerQuestion]string{
			"Dándole tirones de correa",
			"Regañándolo cada vez que tira",
			"Premiando y avanzando solo cuando la correa va floja",
			"Caminando siempre más rápido que él",
		},
		Correct:  2,
		Category: CategoryBehavior,
	},
	{
		Text: "Un perro muestra signos de golpe de calor (jadeo intenso, encías rojas, debilidad). ¿Qué haces?",
		Options: [OptionsPerQuestion]string{
			"Lo cubro con una manta",
			"Le doy mucha agua helada de golpe",
			"Continúo el paseo más despacio",
			"Lo llevo a la sombra, lo enfrío con agua fresca y aviso al dueño y al veterinario",
		},
		Correct:  3,
		Category: CategoryFirstAid,
	},
	{
		Text: "¿Dónde es seguro cruzar la calle con un perro?",
		Options: [OptionsPerQuestion]string{
			"Por el paso peatonal, con el perro a mi lado y la correa corta",
			"Por donde haya menos autos",
			"Dejando que el perro cruce primero",
			"Entre autos estacionados",
		},
		Correct:  0,
		Category: CategorySafety,
	},
	{
		Text: "El perro quiere comer algo que encontró en el suelo. ¿Qué haces?",
		Options: [OptionsPerQuestion]string{
			"Lo dejo, así se entretiene",
			"Uso la orden de dejarlo y lo premio cuando obedece",
			"Le abro la boca a la fuerza siempre",
			"Le doy otra comida del suelo",
		},
		Correct:  1,
		Category: CategoryBehavior,
	},
	{
		Text: "¿Qué haces si la correa o el arnés muestran desgaste antes del paseo?",
		Options: [OptionsPerQuestion]string{
			"Lo uso igual y reviso al volver",
			"Ato la parte gastada con un nudo",
			"No salgo hasta reemplazarlo y aviso al dueño",
			"Paseo al perro sin correa",
		},
		Correct:  2,
		Category: CategorySafety,
	},
	{
		Text: "Al terminar el paseo, ¿cómo entregas al perro?",
		Options: [OptionsPerQuestion]string{
			"Lo dejo en la puerta si no hay nadie",
			"Se lo entrego a cualquier vecino",
			"Lo suelto en el jardín sin revisar la reja",
			"Lo entrego solo al dueño o a la persona autorizada, con la puerta cerrada",
		},
		Correct:  3,
		Category: CategorySafety,
	},
}
