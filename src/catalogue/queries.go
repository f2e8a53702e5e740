package catalogue

// Entries in display order. The SQL texts are business requirements and are kept exactly as specified.
var entries = []Query{
	{
		ID:          "portfolio_overview",
		Name:        "Portfolio-Übersicht: Aktuelle Positionen und Gewinne/Verluste",
		Description: "Zeigt für jeden Investor den aktuellen Wert seiner Positionen und den unrealisierten Gewinn/Verlust - wichtig für die Vermögensübersicht.",
		SQL:         `
            SELECT 
                i.Vorname || ' ' || i.Nachname AS Investor,
                d.Bezeichnung AS Depot,
                u.Name AS Unternehmen,
                a.Ticker,
                SUM(CASE WHEN t.Typ = 'Kauf' THEN t.Menge ELSE -t.Menge END) AS AktuelleAnzahl,
                ROUND(AVG(CASE WHEN t.Typ = 'Kauf' THEN t.Stueckpreis END), 2) AS DurchschnittlicherKaufpreis,
                a.AktuellerKurs,
                ROUND(SUM(CASE WHEN t.Typ = 'Kauf' THEN t.Menge ELSE -t.Menge END) * a.AktuellerKurs, 2) AS AktuellerWert,
                ROUND(SUM(CASE WHEN t.Typ = 'Kauf' THEN t.Menge ELSE -t.Menge END) * 
                    (a.AktuellerKurs - AVG(CASE WHEN t.Typ = 'Kauf' THEN t.Stueckpreis END)), 2) AS UnrealisierterGewinn
            FROM Transaktionen t
            JOIN Depot d ON t.DepotID = d.DepotID
            JOIN Investor i ON d.InvestorID = i.InvestorID
            JOIN Aktie a ON t.ISIN = a.ISIN
            JOIN Unternehmen u ON a.UnternehmenID = u.UnternehmenID
            WHERE d.Status = 'Aktiv'
            GROUP BY i.InvestorID, d.DepotID, a.ISIN
            HAVING AktuelleAnzahl > 0
            ORDER BY i.Nachname, d.Bezeichnung, AktuellerWert DESC
        `,
	},
	{
		ID:          "risk_concentration",
		Name:        "Risikoanalyse: Investoren mit hoher Branchenkonzentration",
		Description: "Identifiziert Investoren, die mehr als 50% ihres Portfolios in einer Branche haben - wichtig für Risikomanagement und Diversifikationsberatung.",
		SQL:         `
            WITH PortfolioPerBranche AS (
                SELECT 
                    i.InvestorID,
                    i.Vorname || ' ' || i.Nachname AS Investor,
                    u.Branche,
                    SUM(CASE WHEN t.Typ = 'Kauf' THEN t.Menge ELSE -t.Menge END) * a.AktuellerKurs AS BranchenWert
                FROM Transaktionen t
                JOIN Depot d ON t.DepotID = d.DepotID
                JOIN Investor i ON d.InvestorID = i.InvestorID
                JOIN Aktie a ON t.ISIN = a.ISIN
                JOIN Unternehmen u ON a.UnternehmenID = u.UnternehmenID
                WHERE d.Status = 'Aktiv'
                GROUP BY i.InvestorID, u.Branche
                HAVING BranchenWert > 0
            ),
            GesamtPortfolio AS (
                SELECT InvestorID, SUM(BranchenWert) AS GesamtWert
                FROM PortfolioPerBranche
                GROUP BY InvestorID
            )
            SELECT 
                p.Investor,
                p.Branche,
                ROUND(p.BranchenWert, 2) AS WertInBranche,
                ROUND(g.GesamtWert, 2) AS GesamtPortfolioWert,
                ROUND(p.BranchenWert / g.GesamtWert * 100, 1) AS ProzentAnteil
            FROM PortfolioPerBranche p
            JOIN GesamtPortfolio g ON p.InvestorID = g.InvestorID
            WHERE p.BranchenWert / g.GesamtWert > 0.5
            ORDER BY ProzentAnteil DESC
        `,
	},
	{
		ID:          "top_performers",
		Name:        "Top-Performer: Aktien mit höchstem Kursgewinn im Beobachtungszeitraum",
		Description: "Analysiert welche Aktien die beste Performance gezeigt haben - nützlich für die Identifikation erfolgreicher Investments.",
		SQL:         `
            SELECT 
                u.Name AS Unternehmen,
                a.Ticker,
                u.Branche,
                u.Land,
                MIN(k.Endkurs) AS TiefsterKurs,
                MAX(k.Endkurs) AS HoechsterKurs,
                a.AktuellerKurs,
                ROUND((a.AktuellerKurs - MIN(k.Endkurs)) / MIN(k.Endkurs) * 100, 2) AS PerformanceInProzent,
                COUNT(DISTINCT k.Datum) AS AnzahlHandelstage
            FROM Aktie a
            JOIN Unternehmen u ON a.UnternehmenID = u.UnternehmenID
            JOIN Kursverlauf k ON a.ISIN = k.ISIN
            GROUP BY a.ISIN
            ORDER BY PerformanceInProzent DESC
            LIMIT 10
        `,
	},
	{
		ID:          "inactive_depots",
		Name:        "Inaktive Depots: Keine Aktivität in den letzten 60 Tagen",
		Description: "Findet Depots ohne kürzliche Transaktionen - wichtig für Kundenreaktivierung und Beziehungsmanagement.",
		SQL:         `
            SELECT 
                i.Vorname || ' ' || i.Nachname AS Investor,
                i.EMail,
                d.Bezeichnung AS Depot,
                d.Status,
                MAX(t.Datum) AS LetzteTransaktion,
                julianday('now') - julianday(MAX(t.Datum)) AS TageOhneAktivitaet,
                COUNT(t.TransaktionsID) AS GesamtTransaktionen,
                GROUP_CONCAT(DISTINCT tel.Nummer) AS Telefonnummern
            FROM Depot d
            JOIN Investor i ON d.InvestorID = i.InvestorID
            LEFT JOIN Transaktionen t ON d.DepotID = t.DepotID
            LEFT JOIN Telefonnummer tel ON i.InvestorID = tel.InvestorID
            WHERE d.Status = 'Aktiv'
            GROUP BY d.DepotID
            HAVING TageOhneAktivitaet > 60 OR LetzteTransaktion IS NULL
            ORDER BY TageOhneAktivitaet DESC
        `,
	},
	{
		ID:          "volatility_alert",
		Name:        "Volatilitäts-Warnung: Aktien mit hohen Tagesschwankungen",
		Description: "Identifiziert Aktien mit überdurchschnittlicher Volatilität - wichtig für Risikowarnungen an Investoren.",
		SQL:         `
            SELECT 
                u.Name AS Unternehmen,
                a.Ticker,
                k.Datum,
                k.Oeffnungskurs,
                k.Tiefstkurs,
                k.Hoechstkurs,
                k.Endkurs,
                ROUND((k.Hoechstkurs - k.Tiefstkurs) / k.Oeffnungskurs * 100, 2) AS Tagesvolatilitaet,
                k.Volumen
            FROM Kursverlauf k
            JOIN Aktie a ON k.ISIN = a.ISIN
            JOIN Unternehmen u ON a.UnternehmenID = u.UnternehmenID
            WHERE (k.Hoechstkurs - k.Tiefstkurs) / k.Oeffnungskurs > 0.05
            ORDER BY Tagesvolatilitaet DESC
            LIMIT 15
        `,
	},
	{
		ID:          "trading_activity",
		Name:        "Handelsaktivität: Transaktionsvolumen pro Monat und Investor",
		Description: "Zeigt das monatliche Handelsvolumen",
		SQL:         `
            SELECT 
                i.Vorname || ' ' || i.Nachname AS Investor,
                strftime('%Y-%m', t.Datum) AS Monat,
                COUNT(*) AS AnzahlTransaktionen,
                SUM(CASE WHEN t.Typ = 'Kauf' THEN 1 ELSE 0 END) AS Kaeufe,
                SUM(CASE WHEN t.Typ = 'Verkauf' THEN 1 ELSE 0 END) AS Verkaeufe,
                ROUND(SUM(t.Gesamtwert), 2) AS Gesamtvolumen,
                ROUND(AVG(t.Gesamtwert), 2) AS DurchschnittlicheTransaktion
            FROM Transaktionen t
            JOIN Depot d ON t.DepotID = d.DepotID
            JOIN Investor i ON d.InvestorID = i.InvestorID
            GROUP BY i.InvestorID, strftime('%Y-%m', t.Datum)
            ORDER BY Monat DESC, Gesamtvolumen DESC
        `,
	},
	{
		ID:          "dividend_portfolio",
		Name:        "Dividenden-Aktien: Beliebte Aktien bei langfristigen Investoren",
		Description: "Zeigt welche Aktien häufig von Investoren mit Dividenden-/Altersvorsorge-Depots gehalten werden.",
		SQL:         `
            SELECT 
                u.Name AS Unternehmen,
                a.Ticker,
                u.Branche,
                COUNT(DISTINCT d.DepotID) AS AnzahlDepots,
                SUM(CASE WHEN t.Typ = 'Kauf' THEN t.Menge ELSE -t.Menge END) AS GesamteAktien,
                ROUND(SUM(CASE WHEN t.Typ = 'Kauf' THEN t.Menge ELSE -t.Menge END) * a.AktuellerKurs, 2) AS GesamtInvestiert,
                GROUP_CONCAT(DISTINCT d.Bezeichnung) AS DepotTypen
            FROM Transaktionen t
            JOIN Depot d ON t.DepotID = d.DepotID
            JOIN Aktie a ON t.ISIN = a.ISIN
            JOIN Unternehmen u ON a.UnternehmenID = u.UnternehmenID
            WHERE d.Bezeichnung LIKE '%Dividenden%' 
               OR d.Bezeichnung LIKE '%Altersvorsorge%'
               OR d.Bezeichnung LIKE '%Konservativ%'
               OR d.Bezeichnung LIKE '%Familienvorsorge%'
            GROUP BY a.ISIN
            HAVING GesamteAktien > 0
            ORDER BY AnzahlDepots DESC, GesamtInvestiert DESC
        `,
	},
	{
		ID:          "pnl_analysis",
		Name:        "Gewinn/Verlust-Analyse: Realisierte Gewinne durch Verkäufe",
		Description: "Berechnet die realisierten Gewinne/Verluste aus abgeschlossenen Transaktionen",
		SQL:         `
            SELECT 
                i.Vorname || ' ' || i.Nachname AS Investor,
                d.Bezeichnung AS Depot,
                u.Name AS Unternehmen,
                t_sell.Datum AS Verkaufsdatum,
                t_sell.Menge AS VerkaufteMenge,
                t_sell.Stueckpreis AS Verkaufspreis,
                t_sell.Gesamtwert AS Verkaufswert,
                ROUND(AVG(t_buy.Stueckpreis), 2) AS DurchschnittlicherEinkaufspreis,
                ROUND(t_sell.Gesamtwert - (t_sell.Menge * AVG(t_buy.Stueckpreis)), 2) AS RealisierterGewinn
            FROM Transaktionen t_sell
            JOIN Depot d ON t_sell.DepotID = d.DepotID
            JOIN Investor i ON d.InvestorID = i.InvestorID
            JOIN Aktie a ON t_sell.ISIN = a.ISIN
            JOIN Unternehmen u ON a.UnternehmenID = u.UnternehmenID
            JOIN Transaktionen t_buy ON t_buy.DepotID = t_sell.DepotID 
                AND t_buy.ISIN = t_sell.ISIN 
                AND t_buy.Typ = 'Kauf'
                AND t_buy.Datum < t_sell.Datum
            WHERE t_sell.Typ = 'Verkauf'
            GROUP BY t_sell.TransaktionsID
            ORDER BY RealisierterGewinn DESC
        `,
	},
	{
		ID:          "regional_distribution",
		Name:        "Regionale Verteilung: Investitionen nach Ländern",
		Description: "Analysiert wie die Investments geografisch verteilt sind",
		SQL:         `
            SELECT 
                u.Land,
                COUNT(DISTINCT u.UnternehmenID) AS AnzahlUnternehmen,
                COUNT(DISTINCT t.DepotID) AS AnzahlDepotsMitInvestments,
                SUM(CASE WHEN t.Typ = 'Kauf' THEN t.Menge ELSE -t.Menge END) AS GesamteAktien,
                ROUND(SUM((CASE WHEN t.Typ = 'Kauf' THEN t.Menge ELSE -t.Menge END) * a.AktuellerKurs), 2) AS GesamtwertAktuell,
                GROUP_CONCAT(DISTINCT u.Branche) AS Branchen
            FROM Transaktionen t
            JOIN Aktie a ON t.ISIN = a.ISIN
            JOIN Unternehmen u ON a.UnternehmenID = u.UnternehmenID
            GROUP BY u.Land
            HAVING GesamteAktien > 0
            ORDER BY GesamtwertAktuell DESC
        `,
	},
	{
		ID:          "depot_performance",
		Name:        "Depot-Performance: Wertentwicklung über Zeit",
		Description: "Zeigt die historische Wertentwicklung der Depots",
		SQL:         `
            SELECT 
                i.Vorname || ' ' || i.Nachname AS Investor,
                d.Bezeichnung AS Depot,
                d.Status,
                MIN(h.Datum) AS ErsterEintrag,
                MAX(h.Datum) AS LetzterEintrag,
                (SELECT Gesamtwert FROM HistorischerDepotwert WHERE DepotID = d.DepotID ORDER BY Datum ASC LIMIT 1) AS StartWert,
                (SELECT Gesamtwert FROM HistorischerDepotwert WHERE DepotID = d.DepotID ORDER BY Datum DESC LIMIT 1) AS EndWert,
                ROUND(((SELECT Gesamtwert FROM HistorischerDepotwert WHERE DepotID = d.DepotID ORDER BY Datum DESC LIMIT 1) - 
                       (SELECT Gesamtwert FROM HistorischerDepotwert WHERE DepotID = d.DepotID ORDER BY Datum ASC LIMIT 1)), 2) AS AbsolutePerformance,
                ROUND(SUM(h.DailyPnL), 2) AS GesamtPnL,
                COUNT(h.Datum) AS AnzahlBewertungen
            FROM HistorischerDepotwert h
            JOIN Depot d ON h.DepotID = d.DepotID
            JOIN Investor i ON d.InvestorID = i.InvestorID
            GROUP BY d.DepotID
            ORDER BY AbsolutePerformance DESC
        `,
	},
	{
		ID:          "investor_contacts",
		Name:        "Investoren-Kontaktdaten: Vollständige Übersicht",
		Description: "Zeigt alle Kontaktinformationen der Investoren mit ihren Depots",
		SQL:         `
            SELECT 
                i.Vorname || ' ' || i.Nachname AS Name,
                i.EMail,
                i.Strasse || ', ' || i.PLZ || ' ' || i.Ort AS Adresse,
                GROUP_CONCAT(tel.Typ || ': ' || tel.Nummer, ' | ') AS Telefonnummern,
                COUNT(DISTINCT d.DepotID) AS AnzahlDepots,
                GROUP_CONCAT(d.Bezeichnung || ' (' || d.Status || ')', ' | ') AS Depots
            FROM Investor i
            LEFT JOIN Telefonnummer tel ON i.InvestorID = tel.InvestorID
            LEFT JOIN Depot d ON i.InvestorID = d.InvestorID
            GROUP BY i.InvestorID
            ORDER BY i.Nachname, i.Vorname
        `,
	},
	{
		ID:          "stock_popularity",
		Name:        "Aktien-Beliebtheit: Meistgehandelte Titel",
		Description: "Zeigt welche Aktien am häufigsten gehandelt werden",
		SQL:         `
            SELECT 
                u.Name AS Unternehmen,
                a.Ticker,
                a.Waehrung,
                u.Branche,
                COUNT(t.TransaktionsID) AS AnzahlTransaktionen,
                SUM(t.Menge) AS GesamtGehandelteMenge,
                ROUND(SUM(t.Gesamtwert), 2) AS GesamtHandelsvolumen,
                COUNT(DISTINCT t.DepotID) AS AnzahlVerschiedeneDepots,
                a.AktuellerKurs AS AktuellerKurs
            FROM Aktie a
            JOIN Unternehmen u ON a.UnternehmenID = u.UnternehmenID
            LEFT JOIN Transaktionen t ON a.ISIN = t.ISIN
            GROUP BY a.ISIN
            ORDER BY AnzahlTransaktionen DESC, GesamtHandelsvolumen DESC
        `,
	},
}
